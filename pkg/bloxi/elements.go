package bloxi

// Preconfigured factories for common elements. Each records a display name
// of the form Bx<Name>.

// Structure
var (
	Div     = MakeStyledFactory("div", "BxDiv")
	Span    = MakeStyledFactory("span", "BxSpan")
	Section = MakeStyledFactory("section", "BxSection")
	Article = MakeStyledFactory("article", "BxArticle")
	Aside   = MakeStyledFactory("aside", "BxAside")
	Nav     = MakeStyledFactory("nav", "BxNav")
	Header  = MakeStyledFactory("header", "BxHeader")
	Footer  = MakeStyledFactory("footer", "BxFooter")
	Main    = MakeStyledFactory("main", "BxMain")
)

// Typography
var (
	H1         = MakeStyledFactory("h1", "BxH1")
	H2         = MakeStyledFactory("h2", "BxH2")
	H3         = MakeStyledFactory("h3", "BxH3")
	H4         = MakeStyledFactory("h4", "BxH4")
	H5         = MakeStyledFactory("h5", "BxH5")
	H6         = MakeStyledFactory("h6", "BxH6")
	P          = MakeStyledFactory("p", "BxP")
	Blockquote = MakeStyledFactory("blockquote", "BxBlockquote")
	Pre        = MakeStyledFactory("pre", "BxPre")
	Code       = MakeStyledFactory("code", "BxCode")
	Em         = MakeStyledFactory("em", "BxEm")
	Strong     = MakeStyledFactory("strong", "BxStrong")
	Small      = MakeStyledFactory("small", "BxSmall")
	Mark       = MakeStyledFactory("mark", "BxMark")
	Del        = MakeStyledFactory("del", "BxDel")
	Ins        = MakeStyledFactory("ins", "BxIns")
	Sub        = MakeStyledFactory("sub", "BxSub")
	Sup        = MakeStyledFactory("sup", "BxSup")
	B          = MakeStyledFactory("b", "BxB")
	I          = MakeStyledFactory("i", "BxI")
	U          = MakeStyledFactory("u", "BxU")
	Q          = MakeStyledFactory("q", "BxQ")
	S          = MakeStyledFactory("s", "BxS")
	Cite       = MakeStyledFactory("cite", "BxCite")
	Var        = MakeStyledFactory("var", "BxVar")
	Kbd        = MakeStyledFactory("kbd", "BxKbd")
)

// Forms
var (
	Form     = MakeStyledFactory("form", "BxForm")
	Input    = MakeStyledFactory("input", "BxInput")
	Button   = MakeStyledFactory("button", "BxButton")
	Textarea = MakeStyledFactory("textarea", "BxTextarea")
	Select   = MakeStyledFactory("select", "BxSelect")
	Option   = MakeStyledFactory("option", "BxOption")
	OptGroup = MakeStyledFactory("optgroup", "BxOptGroup")
	Label    = MakeStyledFactory("label", "BxLabel")
	Fieldset = MakeStyledFactory("fieldset", "BxFieldset")
	Legend   = MakeStyledFactory("legend", "BxLegend")
)

// Tables
var (
	Table    = MakeStyledFactory("table", "BxTable")
	THead    = MakeStyledFactory("thead", "BxTHead")
	TBody    = MakeStyledFactory("tbody", "BxTBody")
	TFoot    = MakeStyledFactory("tfoot", "BxTFoot")
	Tr       = MakeStyledFactory("tr", "BxTr")
	Th       = MakeStyledFactory("th", "BxTh")
	Td       = MakeStyledFactory("td", "BxTd")
	Caption  = MakeStyledFactory("caption", "BxCaption")
	Col      = MakeStyledFactory("col", "BxCol")
	ColGroup = MakeStyledFactory("colgroup", "BxColGroup")
)

// Lists
var (
	Ul = MakeStyledFactory("ul", "BxUl")
	Ol = MakeStyledFactory("ol", "BxOl")
	Li = MakeStyledFactory("li", "BxLi")
	Dl = MakeStyledFactory("dl", "BxDl")
	Dt = MakeStyledFactory("dt", "BxDt")
	Dd = MakeStyledFactory("dd", "BxDd")
)

// Media
var (
	Img        = MakeStyledFactory("img", "BxImg")
	Picture    = MakeStyledFactory("picture", "BxPicture")
	Video      = MakeStyledFactory("video", "BxVideo")
	Audio      = MakeStyledFactory("audio", "BxAudio")
	Source     = MakeStyledFactory("source", "BxSource")
	Track      = MakeStyledFactory("track", "BxTrack")
	Canvas     = MakeStyledFactory("canvas", "BxCanvas")
	Svg        = MakeStyledFactory("svg", "BxSvg")
	Circle     = MakeStyledFactory("circle", "BxCircle")
	Rect       = MakeStyledFactory("rect", "BxRect")
	Line       = MakeStyledFactory("line", "BxLine")
	Figure     = MakeStyledFactory("figure", "BxFigure")
	FigCaption = MakeStyledFactory("figcaption", "BxFigCaption")
	IFrame     = MakeStyledFactory("iframe", "BxIFrame")
)

// Interactive
var (
	A       = MakeStyledFactory("a", "BxA")
	Summary = MakeStyledFactory("summary", "BxSummary")
	Details = MakeStyledFactory("details", "BxDetails")
	Dialog  = MakeStyledFactory("dialog", "BxDialog")
)

// Other
var (
	Hr       = MakeStyledFactory("hr", "BxHr")
	Br       = MakeStyledFactory("br", "BxBr")
	Wbr      = MakeStyledFactory("wbr", "BxWbr")
	Time     = MakeStyledFactory("time", "BxTime")
	Progress = MakeStyledFactory("progress", "BxProgress")
	Meter    = MakeStyledFactory("meter", "BxMeter")
)

var (
	// Header and footer variants with their own display names.
	SectionHeader = MakeStyledFactory("header", "BxSectionHeader")
	SectionFooter = MakeStyledFactory("footer", "BxSectionFooter")
	Underline     = MakeStyledFactory("u", "BxUnderline")
	Strikethrough = MakeStyledFactory("s", "BxStrikethrough")

	// Plain div factories named for layout intent. See pkg/layout for
	// helpers that set the flex and grid props.
	FlexBox    = MakeStyledFactory("div", "BxFlex")
	FlexRow    = MakeStyledFactory("div", "BxFlexRow")
	FlexColumn = MakeStyledFactory("div", "BxFlexColumn")
	GridBox    = MakeStyledFactory("div", "BxGrid")
	GridCell   = MakeStyledFactory("div", "BxGridItem")
)
