// Package store persists rendered pagination fragments.
//
// A Store takes a key such as "page-3.html" and the fragment bytes. Two
// backends are provided: DiskStore writes below a root directory and
// S3Store uploads to a bucket through aws-sdk-go-v2. Open picks one from
// the export section of pager.json.
//
//	st, err := store.Open(cfg.Export)
//	if err != nil {
//	    return err
//	}
//	loc, err := st.Put(ctx, "page-1.html", store.ContentTypeHTML, body)
package store
