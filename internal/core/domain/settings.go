package domain

// Default settings values.
const (
	DefaultDataDir  = "."
	DefaultPageSize = 5
	MaxPageSize     = 100
)

// DataSettings locates the trip datasets.
type DataSettings struct {
	// Dir is the directory relative dataset paths resolve against.
	Dir string `validate:"required"`

	// Files maps each city to its dataset file (absolute or relative to Dir).
	Files map[City]string `validate:"required,dive,required"`
}

// DisplaySettings controls console output.
type DisplaySettings struct {
	// PageSize is the number of raw rows shown per window.
	PageSize int `validate:"min=1,max=100"`
}

// AppSettings is the complete application configuration.
type AppSettings struct {
	Data    DataSettings
	Display DisplaySettings
}

// DefaultAppSettings returns settings pointing at the stock dataset names
// in the working directory.
func DefaultAppSettings() AppSettings {
	files := make(map[City]string, len(AllCities()))
	for _, c := range AllCities() {
		files[c] = c.DefaultFile()
	}
	return AppSettings{
		Data: DataSettings{
			Dir:   DefaultDataDir,
			Files: files,
		},
		Display: DisplaySettings{
			PageSize: DefaultPageSize,
		},
	}
}
