package main

import (
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/vango-dev/pager/internal/config"
	"github.com/vango-dev/pager/internal/errors"
	"github.com/vango-dev/pager/pkg/paginate"
)

// loadConfig reads --config, or ./pager.json when it exists, falling back to
// defaults with environment overrides.
func loadConfig(g *globalFlags) (*config.Config, error) {
	if g.configPath != "" {
		return config.LoadFile(g.configPath)
	}
	cfg, err := config.Load(".")
	if errors.Code(err) == "E102" {
		cfg = config.New()
		cfg.ApplyEnv()
		return cfg, nil
	}
	return cfg, err
}

// newLogger builds the process logger on stderr and installs it as default.
func newLogger(cfg *config.Config, g *globalFlags) *slog.Logger {
	logger := cfg.Log.NewLogger(os.Stderr, g.verbose)
	slog.SetDefault(logger)
	return logger
}

// paginationFlags mirror every paginate.Config field. Only flags set on the
// command line override the loaded configuration.
type paginationFlags struct {
	total           int
	perPage         int
	page            int
	window          int
	edges           int
	link            string
	prevText        string
	nextText        string
	ellipsisText    string
	prevAlwaysShown bool
	nextAlwaysShown bool
	currentClass    string
	prevClass       string
	nextClass       string
	ellipsisClass   string
}

func (f *paginationFlags) register(fs *pflag.FlagSet) {
	d := paginate.DefaultConfig()
	fs.IntVarP(&f.total, "total", "t", d.TotalItems, "Total number of items")
	fs.IntVar(&f.perPage, "per-page", d.ItemsPerPage, "Items per page")
	fs.IntVarP(&f.page, "page", "p", d.CurrentPage, "Current page (zero-based)")
	fs.IntVarP(&f.window, "window", "w", d.DisplayWindowSize, "Number of pages shown around the current page")
	fs.IntVarP(&f.edges, "edges", "e", d.EdgeEntries, "Pages always shown at each end")
	fs.StringVarP(&f.link, "link", "l", d.LinkTemplate, "Link template; "+paginate.IDPlaceholder+" is replaced by the page index")
	fs.StringVar(&f.prevText, "prev-text", d.PrevText, "Prev link text (empty hides it)")
	fs.StringVar(&f.nextText, "next-text", d.NextText, "Next link text (empty hides it)")
	fs.StringVar(&f.ellipsisText, "ellipsis-text", d.EllipsisText, "Ellipsis text (empty hides it)")
	fs.BoolVar(&f.prevAlwaysShown, "prev-always", d.PrevAlwaysShown, "Show Prev on the first page")
	fs.BoolVar(&f.nextAlwaysShown, "next-always", d.NextAlwaysShown, "Show Next on the last page")
	fs.StringVar(&f.currentClass, "current-class", paginate.DefaultCurrentClass, "Class of the current page")
	fs.StringVar(&f.prevClass, "prev-class", paginate.DefaultPrevClass, "Class of the Prev link")
	fs.StringVar(&f.nextClass, "next-class", paginate.DefaultNextClass, "Class of the Next link")
	fs.StringVar(&f.ellipsisClass, "ellipsis-class", "", "Class of ellipses")
}

// apply copies every flag the user set into cfg.
func (f *paginationFlags) apply(fs *pflag.FlagSet, cfg *paginate.Config) {
	if fs.Changed("total") {
		cfg.SetTotalItems(&f.total)
	}
	setInt := map[string]struct {
		dst *int
		src int
	}{
		"per-page": {&cfg.ItemsPerPage, f.perPage},
		"page":     {&cfg.CurrentPage, f.page},
		"window":   {&cfg.DisplayWindowSize, f.window},
		"edges":    {&cfg.EdgeEntries, f.edges},
	}
	for name, v := range setInt {
		if fs.Changed(name) {
			*v.dst = v.src
		}
	}
	setString := map[string]struct {
		dst *string
		src string
	}{
		"link":           {&cfg.LinkTemplate, f.link},
		"prev-text":      {&cfg.PrevText, f.prevText},
		"next-text":      {&cfg.NextText, f.nextText},
		"ellipsis-text":  {&cfg.EllipsisText, f.ellipsisText},
		"current-class":  {&cfg.Classes.Current, f.currentClass},
		"prev-class":     {&cfg.Classes.Prev, f.prevClass},
		"next-class":     {&cfg.Classes.Next, f.nextClass},
		"ellipsis-class": {&cfg.Classes.Ellipsis, f.ellipsisClass},
	}
	for name, v := range setString {
		if fs.Changed(name) {
			*v.dst = v.src
		}
	}
	if fs.Changed("prev-always") {
		cfg.PrevAlwaysShown = f.prevAlwaysShown
	}
	if fs.Changed("next-always") {
		cfg.NextAlwaysShown = f.nextAlwaysShown
	}
}
