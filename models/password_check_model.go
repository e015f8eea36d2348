package models

type PasswordChecks struct {
	Length       bool `json:"length"`
	Lowercase    bool `json:"lowercase"`
	Uppercase    bool `json:"uppercase"`
	Numbers      bool `json:"numbers"`
	Symbols      bool `json:"symbols"`
	NoSequential bool `json:"no_sequential"`
	NoRepeating  bool `json:"no_repeating"`
	NoCommon     bool `json:"no_common"`
}

type PasswordReport struct {
	Strength float64        `json:"strength"`
	Label    string         `json:"label"`
	Checks   PasswordChecks `json:"checks"`
}
