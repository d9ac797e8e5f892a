package domain

// LocationReader интерфейс для чтения локаций
type LocationReader interface {
	ReadLocations(filename string) ([]Location, error)
}

// TourWriter интерфейс для записи результатов
type TourWriter interface {
	WriteTour(filename string, result PartitionResult) error
}

// ConfigReader интерфейс для чтения конфигурации
type ConfigReader interface {
	ReadConfig(path string) (*Config, error)
}
