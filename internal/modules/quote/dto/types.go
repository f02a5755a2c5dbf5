package dto

type QuoteOutput struct {
	Text     string
	Author   string
	Fallback bool
}

type SourceStatusOutput struct {
	Count    int
	Fallback bool
}
