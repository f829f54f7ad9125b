package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	OrderServiceBaseURL string
	OrderServiceAPIKey  string

	PostexBaseURL           string
	PostexAPIToken          string
	PostexPickupAddressCode string

	LCSBaseURL      string
	LCSAPIKey       string
	LCSAPIPassword  string
	LCSPickupCityID string

	TrackingRefreshSchedule string
	ServiceStatusSchedule   string
}
