package dto

const TypeAnnotation = "annotation"

type MessageInput struct {
	Type string
	Text string
}

type MessageOutput struct {
	Stored bool
	Count  int
}

type ExportOutput struct {
	Path  string
	Count int
}
