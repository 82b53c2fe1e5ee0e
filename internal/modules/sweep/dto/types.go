package dto

type SweepOutput struct {
	OpenTabs    int
	Distracting []string
	Reminded    bool
}
