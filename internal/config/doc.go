// Package config provides configuration parsing for pager.
//
// The configuration is stored in pager.json. Every key is optional; missing
// keys keep their defaults.
//
// # Configuration File Structure
//
//	{
//	  "pagination": {
//	    "itemsPerPage": 20,
//	    "displayWindowSize": 7,
//	    "edgeEntries": 1,
//	    "linkTemplate": "/posts?page=__id__",
//	    "prevText": "«",
//	    "nextText": "»",
//	    "classes": {"current": "active"}
//	  },
//	  "server": {
//	    "host": "localhost",
//	    "port": 8080,
//	    "shutdownTimeout": "10s",
//	    "metricsPath": "/metrics"
//	  },
//	  "export": {
//	    "backend": "s3",
//	    "bucket": "static-site",
//	    "prefix": "fragments/",
//	    "region": "eu-west-1"
//	  },
//	  "log": {"level": "info", "format": "text"}
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// PAGER_HOST and PAGER_PORT override the server address after loading.
package config
