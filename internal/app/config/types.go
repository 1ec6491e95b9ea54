package config

type DriverConfig struct {
	MongoDB  MongoDB
	Redis    Redis
	RabbitMQ RabbitMQ
	Logger   Logger
}

type MongoDB struct {
	Port     string
	Host     string
	DbName   string
	Username string
	Password string
}

type Redis struct {
	Host     string
	Port     string
	Password string
}

type RabbitMQ struct {
	Port     string
	Host     string
	Username string
	Password string
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type InternalConfig struct {
	App      App
	Upstream Upstream
}

type App struct {
	Env                   string
	Port                  string
	Version               string
	EndpointPrefix        string
	Timezone              string
	MaxRequests           int
	ShutdownTimeout       int
	ListCacheTTLSeconds   int
	SubmitLockTTLSeconds  int
	NotificationQueueName string
}

type Upstream struct {
	BaseURL        string
	BearerToken    string
	TimeoutSeconds int
}
