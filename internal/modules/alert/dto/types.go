package dto

type EvaluateInput struct {
	URL      string
	Active   bool
	Complete bool
}

type EvaluateOutput struct {
	Fired bool
	Rule  string
}

type RuleOutput struct {
	Name    string
	Pattern string
	Title   string
	Message string
}
