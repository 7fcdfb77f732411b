package tokens

// Short names for the most used tokens.
//
//nolint:gochecknoglobals // function aliases
var (
	H   = Heading
	P   = Paragraph
	UL  = UnorderedList
	OL  = OrderedList
	HR  = HorizontalRule
	Img = Image
)
