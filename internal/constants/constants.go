package constants

import "time"

const (
	// AppName is the binary name, used for log file names and help text.
	AppName = "csvdash"
	// EnvPrefix is stripped from environment variables before they are mapped
	// onto config keys, i.e. CSVDASH_SOURCE_DIR -> source.dir
	EnvPrefix = "CSVDASH_"

	DefaultSourceKind = "dir"
	DefaultSourceDir  = "./csv"
	DefaultExportDir  = "."
	DefaultLogLevel   = "info"

	DefaultPageSize = 10
	DefaultRunDelay = time.Second

	// MaxSampleQueries caps how many sample queries are offered per table.
	MaxSampleQueries = 4
)

// DefaultTables is the fixed table set the dashboard offers.
var DefaultTables = []string{
	"categories",
	"customers",
	"employees",
	"orders",
	"products",
}

// PageSizes are the selectable rows-per-page values.
var PageSizes = []int{5, 10, 20, 50}

// IsValidPageSize reports whether size is one of PageSizes.
func IsValidPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}
