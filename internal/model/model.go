// Package model contains data structures for the run configuration, search modes and node DTOs
package model

// SearchMode - стратегия фильтрации строк
type SearchMode string

const (
	ModeLiteral    = SearchMode("literal")
	ModeIgnoreCase = SearchMode("ignore_case")
	ModeRegex      = SearchMode("regex")
)

// Config - параметры одного запуска, собираются один раз из os.Args и окружения
type Config struct {
	Query      string // строка или regexp для поиска
	FilePath   string // файл для чтения
	IgnoreCase bool   // IGNORE_CASE
	UseRegex   bool   // USE_REGEX
	Debug      bool   // GREP_DEBUG - включает debug-логи в stderr
}

// Mode picks the matcher. Ignore-case wins over regex when both toggles are set.
func (c *Config) Mode() SearchMode {
	return SelectMode(c.IgnoreCase, c.UseRegex)
}

// SelectMode applies the same precedence to raw toggles, used by the search node.
func SelectMode(ignoreCase, useRegex bool) SearchMode {
	switch {
	case ignoreCase:
		return ModeIgnoreCase
	case useRegex:
		return ModeRegex
	default:
		return ModeLiteral
	}
}

// NodeConfig - параметры запуска search-node
type NodeConfig struct {
	Env           string `yaml:"env" toml:"env"`
	Address       string `yaml:"address" toml:"address"`
	MaxInputBytes int64  `yaml:"max_input_bytes" toml:"max_input_bytes"`
}

// SearchTask - задание для search-node: текст приходит в теле запроса целиком
type SearchTask struct {
	TaskID     string `json:"tid"`
	Query      string `json:"query"`
	IgnoreCase bool   `json:"ignore_case"`
	UseRegex   bool   `json:"use_regex"`
	Input      string `json:"input"`
}

// SearchResult - ответ search-node, HashSumm считается по Output
type SearchResult struct {
	TaskID   string     `json:"tid"`
	Mode     SearchMode `json:"mode"`
	HashSumm uint64     `json:"hash"`
	Output   []string   `json:"output"`
}
