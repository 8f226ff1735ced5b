// This file re-exports the bloxi element factories for the el package.
package el

import "github.com/bloxi-go/bloxi/pkg/bloxi"

func Div(props Props, children ...any) *VNode {
	return bloxi.Div(props, children...)
}
func Span(props Props, children ...any) *VNode {
	return bloxi.Span(props, children...)
}
func Section(props Props, children ...any) *VNode {
	return bloxi.Section(props, children...)
}
func Article(props Props, children ...any) *VNode {
	return bloxi.Article(props, children...)
}
func Aside(props Props, children ...any) *VNode {
	return bloxi.Aside(props, children...)
}
func Nav(props Props, children ...any) *VNode {
	return bloxi.Nav(props, children...)
}
func Header(props Props, children ...any) *VNode {
	return bloxi.Header(props, children...)
}
func Footer(props Props, children ...any) *VNode {
	return bloxi.Footer(props, children...)
}
func Main(props Props, children ...any) *VNode {
	return bloxi.Main(props, children...)
}
func H1(props Props, children ...any) *VNode {
	return bloxi.H1(props, children...)
}
func H2(props Props, children ...any) *VNode {
	return bloxi.H2(props, children...)
}
func H3(props Props, children ...any) *VNode {
	return bloxi.H3(props, children...)
}
func H4(props Props, children ...any) *VNode {
	return bloxi.H4(props, children...)
}
func H5(props Props, children ...any) *VNode {
	return bloxi.H5(props, children...)
}
func H6(props Props, children ...any) *VNode {
	return bloxi.H6(props, children...)
}
func P(props Props, children ...any) *VNode {
	return bloxi.P(props, children...)
}
func Blockquote(props Props, children ...any) *VNode {
	return bloxi.Blockquote(props, children...)
}
func Pre(props Props, children ...any) *VNode {
	return bloxi.Pre(props, children...)
}
func Code(props Props, children ...any) *VNode {
	return bloxi.Code(props, children...)
}
func Em(props Props, children ...any) *VNode {
	return bloxi.Em(props, children...)
}
func Strong(props Props, children ...any) *VNode {
	return bloxi.Strong(props, children...)
}
func Small(props Props, children ...any) *VNode {
	return bloxi.Small(props, children...)
}
func Mark(props Props, children ...any) *VNode {
	return bloxi.Mark(props, children...)
}
func Del(props Props, children ...any) *VNode {
	return bloxi.Del(props, children...)
}
func Ins(props Props, children ...any) *VNode {
	return bloxi.Ins(props, children...)
}
func Sub(props Props, children ...any) *VNode {
	return bloxi.Sub(props, children...)
}
func Sup(props Props, children ...any) *VNode {
	return bloxi.Sup(props, children...)
}
func B(props Props, children ...any) *VNode {
	return bloxi.B(props, children...)
}
func I(props Props, children ...any) *VNode {
	return bloxi.I(props, children...)
}
func U(props Props, children ...any) *VNode {
	return bloxi.U(props, children...)
}
func Q(props Props, children ...any) *VNode {
	return bloxi.Q(props, children...)
}
func S(props Props, children ...any) *VNode {
	return bloxi.S(props, children...)
}
func Cite(props Props, children ...any) *VNode {
	return bloxi.Cite(props, children...)
}
func Var(props Props, children ...any) *VNode {
	return bloxi.Var(props, children...)
}
func Kbd(props Props, children ...any) *VNode {
	return bloxi.Kbd(props, children...)
}
func Form(props Props, children ...any) *VNode {
	return bloxi.Form(props, children...)
}
func Input(props Props, children ...any) *VNode {
	return bloxi.Input(props, children...)
}
func Button(props Props, children ...any) *VNode {
	return bloxi.Button(props, children...)
}
func Textarea(props Props, children ...any) *VNode {
	return bloxi.Textarea(props, children...)
}
func Select(props Props, children ...any) *VNode {
	return bloxi.Select(props, children...)
}
func Option(props Props, children ...any) *VNode {
	return bloxi.Option(props, children...)
}
func OptGroup(props Props, children ...any) *VNode {
	return bloxi.OptGroup(props, children...)
}
func Label(props Props, children ...any) *VNode {
	return bloxi.Label(props, children...)
}
func Fieldset(props Props, children ...any) *VNode {
	return bloxi.Fieldset(props, children...)
}
func Legend(props Props, children ...any) *VNode {
	return bloxi.Legend(props, children...)
}
func Table(props Props, children ...any) *VNode {
	return bloxi.Table(props, children...)
}
func THead(props Props, children ...any) *VNode {
	return bloxi.THead(props, children...)
}
func TBody(props Props, children ...any) *VNode {
	return bloxi.TBody(props, children...)
}
func TFoot(props Props, children ...any) *VNode {
	return bloxi.TFoot(props, children...)
}
func Tr(props Props, children ...any) *VNode {
	return bloxi.Tr(props, children...)
}
func Th(props Props, children ...any) *VNode {
	return bloxi.Th(props, children...)
}
func Td(props Props, children ...any) *VNode {
	return bloxi.Td(props, children...)
}
func Caption(props Props, children ...any) *VNode {
	return bloxi.Caption(props, children...)
}
func Col(props Props, children ...any) *VNode {
	return bloxi.Col(props, children...)
}
func ColGroup(props Props, children ...any) *VNode {
	return bloxi.ColGroup(props, children...)
}
func Ul(props Props, children ...any) *VNode {
	return bloxi.Ul(props, children...)
}
func Ol(props Props, children ...any) *VNode {
	return bloxi.Ol(props, children...)
}
func Li(props Props, children ...any) *VNode {
	return bloxi.Li(props, children...)
}
func Dl(props Props, children ...any) *VNode {
	return bloxi.Dl(props, children...)
}
func Dt(props Props, children ...any) *VNode {
	return bloxi.Dt(props, children...)
}
func Dd(props Props, children ...any) *VNode {
	return bloxi.Dd(props, children...)
}
func Img(props Props, children ...any) *VNode {
	return bloxi.Img(props, children...)
}
func Picture(props Props, children ...any) *VNode {
	return bloxi.Picture(props, children...)
}
func Video(props Props, children ...any) *VNode {
	return bloxi.Video(props, children...)
}
func Audio(props Props, children ...any) *VNode {
	return bloxi.Audio(props, children...)
}
func Source(props Props, children ...any) *VNode {
	return bloxi.Source(props, children...)
}
func Track(props Props, children ...any) *VNode {
	return bloxi.Track(props, children...)
}
func Canvas(props Props, children ...any) *VNode {
	return bloxi.Canvas(props, children...)
}
func Svg(props Props, children ...any) *VNode {
	return bloxi.Svg(props, children...)
}
func Circle(props Props, children ...any) *VNode {
	return bloxi.Circle(props, children...)
}
func Rect(props Props, children ...any) *VNode {
	return bloxi.Rect(props, children...)
}
func Line(props Props, children ...any) *VNode {
	return bloxi.Line(props, children...)
}
func Figure(props Props, children ...any) *VNode {
	return bloxi.Figure(props, children...)
}
func FigCaption(props Props, children ...any) *VNode {
	return bloxi.FigCaption(props, children...)
}
func IFrame(props Props, children ...any) *VNode {
	return bloxi.IFrame(props, children...)
}
func A(props Props, children ...any) *VNode {
	return bloxi.A(props, children...)
}
func Summary(props Props, children ...any) *VNode {
	return bloxi.Summary(props, children...)
}
func Details(props Props, children ...any) *VNode {
	return bloxi.Details(props, children...)
}
func Dialog(props Props, children ...any) *VNode {
	return bloxi.Dialog(props, children...)
}
func Hr(props Props, children ...any) *VNode {
	return bloxi.Hr(props, children...)
}
func Br(props Props, children ...any) *VNode {
	return bloxi.Br(props, children...)
}
func Wbr(props Props, children ...any) *VNode {
	return bloxi.Wbr(props, children...)
}
func Time(props Props, children ...any) *VNode {
	return bloxi.Time(props, children...)
}
func Progress(props Props, children ...any) *VNode {
	return bloxi.Progress(props, children...)
}
func Meter(props Props, children ...any) *VNode {
	return bloxi.Meter(props, children...)
}
func SectionHeader(props Props, children ...any) *VNode {
	return bloxi.SectionHeader(props, children...)
}
func SectionFooter(props Props, children ...any) *VNode {
	return bloxi.SectionFooter(props, children...)
}
func Underline(props Props, children ...any) *VNode {
	return bloxi.Underline(props, children...)
}
func Strikethrough(props Props, children ...any) *VNode {
	return bloxi.Strikethrough(props, children...)
}
func FlexBox(props Props, children ...any) *VNode {
	return bloxi.FlexBox(props, children...)
}
func FlexRow(props Props, children ...any) *VNode {
	return bloxi.FlexRow(props, children...)
}
func FlexColumn(props Props, children ...any) *VNode {
	return bloxi.FlexColumn(props, children...)
}
func GridBox(props Props, children ...any) *VNode {
	return bloxi.GridBox(props, children...)
}
func GridCell(props Props, children ...any) *VNode {
	return bloxi.GridCell(props, children...)
}
