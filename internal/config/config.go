package config

import "time"

// Dictionary backends.
const (
	BackendWordList = "wordlist"
	BackendFreeDict = "freedict"
	BackendKWG      = "kwg"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Session    SessionConfig    `yaml:"session"`
	Words      WordsConfig      `yaml:"words"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Scores     ScoresConfig     `yaml:"scores"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           int           `yaml:"port"            env:"PORT"                   env-default:"5175"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"SERVER_REQUEST_TIMEOUT" env-default:"10s"`
	ClientOrigin   string        `yaml:"client_origin"   env:"CLIENT_ORIGIN"          env-default:"http://localhost:5173"`
	Production     bool          `yaml:"production"      env:"PRODUCTION"             env-default:"false"`
}

// SessionConfig holds game session and session token settings.
type SessionConfig struct {
	JWTSecret  string        `yaml:"jwt_secret"  env:"JWT_SECRET"        env-default:"dev_secret_change_me"`
	TokenTTL   time.Duration `yaml:"token_ttl"   env:"SESSION_TOKEN_TTL" env-default:"24h"`
	CookieName string        `yaml:"cookie_name" env:"COOKIE_NAME"       env-default:"wordscramble_token"`
	MinLength  int           `yaml:"min_length"  env:"MIN_WORD_LENGTH"   env-default:"4"`
	DailySalt  string        `yaml:"daily_salt"  env:"DAILY_SALT"        env-default:"local_dev_salt"`
}

// WordsConfig points at the root word list. Empty means the embedded list.
type WordsConfig struct {
	RootsFile string `yaml:"roots_file" env:"ROOT_WORDS_FILE"`
}

// DictionaryConfig selects and configures the dictionary backend.
type DictionaryConfig struct {
	Backend         string        `yaml:"backend"          env:"DICTIONARY_BACKEND"      env-default:"wordlist"`
	Language        string        `yaml:"language"         env:"DICTIONARY_LANGUAGE"     env-default:"en"`
	Timeout         time.Duration `yaml:"timeout"          env:"DICTIONARY_TIMEOUT"      env-default:"3s"`
	Cache           bool          `yaml:"cache"            env:"DICTIONARY_CACHE"        env-default:"true"`
	WordListFile    string        `yaml:"wordlist_file"    env:"DICTIONARY_FILE"`
	FreeDictURL     string        `yaml:"freedict_url"     env:"FREEDICT_URL"            env-default:"https://api.dictionaryapi.dev/api/v2/entries"`
	Retries         uint          `yaml:"retries"          env:"FREEDICT_RETRIES"        env-default:"3"`
	KWGDataPath     string        `yaml:"kwg_data_path"    env:"KWG_DATA_PATH"           env-default:"./data"`
	KWGLexicon      string        `yaml:"kwg_lexicon"      env:"KWG_LEXICON"             env-default:"NWL20"`
	KWGDistribution string        `yaml:"kwg_distribution" env:"KWG_DISTRIBUTION"        env-default:"english"`
}

// ScoresConfig holds the optional score log. An empty path disables it.
type ScoresConfig struct {
	DBPath string `yaml:"db_path" env:"SCORES_DB_PATH"`
	Limit  int    `yaml:"limit"   env:"SCORES_LIMIT"   env-default:"20"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Pretty bool   `yaml:"pretty" env:"LOG_PRETTY" env-default:"false"`
}
