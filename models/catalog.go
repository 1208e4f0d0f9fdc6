package models

type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

type District struct {
	Option        `yaml:",inline"`
	Neighborhoods []Option `json:"neighborhoods,omitempty" yaml:"neighborhoods"`
}

type Province struct {
	Option    `yaml:",inline"`
	Districts []District `json:"districts,omitempty" yaml:"districts"`
}

type MainCategory struct {
	Option        `yaml:",inline"`
	SubCategories []Option `json:"subCategories,omitempty" yaml:"subCategories"`
}

// Catalog holds the location and category cascades.
type Catalog struct {
	Provinces  []Province     `yaml:"provinces"`
	Categories []MainCategory `yaml:"categories"`
}
