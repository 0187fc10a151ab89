package entity

type GuideStep struct {
	Title       string
	Description string
}

type GuideFeature struct {
	Title       string
	Description string
}

// Guide is the static content of the "how it works" view.
type Guide struct {
	Title    string
	Intro    string
	Steps    []GuideStep
	Features []GuideFeature
	About    []string
}
