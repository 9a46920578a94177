package configuration

type Configuration struct {
	Prefix     string `usage:"text prefix for populated records"`
	Records    int    `usage:"number of records to populate"`
	Executions int    `usage:"number of timed filter rounds"`
	Workers    int    `usage:"parallel scan workers, 1 scans sequentially"`
	Column     string `usage:"legacy query column: column0 | column1 | column2 | column3"`
	Value      string `usage:"legacy query value"`
	Check      bool   `usage:"run the self check scenario"`
	Version    bool   `usage:"show version and exit"`
	ShowConfig bool   `usage:"print config"`
}

func Default() *Configuration {
	return &Configuration{
		Prefix:     "testdata",
		Records:    1000,
		Executions: 1,
		Workers:    1,
		Check:      true,
	}
}
