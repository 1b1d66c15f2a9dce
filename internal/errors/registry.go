package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Markup Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryMarkup,
		Message:  "Element content must not be empty",
		Detail:   "Content-bearing elements need non-empty content. Use NewVoid for elements without content, such as img or input.",
	},

	// ============================================
	// Config Errors (E100-E119)
	// ============================================

	"E100": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is outside its allowed range.",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Failed to parse pager.json",
		Detail:   "The configuration file is not valid JSON or does not match the expected schema.",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No pager.json was found at the given location.",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Failed to write configuration",
		Detail:   "The configuration could not be written to disk.",
	},

	// ============================================
	// Store Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryStore,
		Message:  "Failed to store fragment",
		Detail:   "The export backend rejected or failed to persist a rendered fragment.",
	},
	"E121": {
		Category: CategoryStore,
		Message:  "Unknown export backend",
		Detail:   "Supported export backends are \"disk\" and \"s3\".",
	},

	// ============================================
	// CLI Errors (E140-E159)
	// ============================================

	"E140": {
		Category: CategoryCLI,
		Message:  "Invalid command usage",
		Detail:   "The command was called with missing or conflicting arguments.",
	},

	// ============================================
	// HTTP Errors (E160-E179)
	// ============================================

	"E160": {
		Category: CategoryHTTP,
		Message:  "Invalid query parameter",
		Detail:   "Pagination query parameters must be base-10 integers within their allowed range.",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
