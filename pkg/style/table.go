package style

// Table is a set of prop names that are routed to the style compiler.
type Table map[string]struct{}

// NewTable builds a table from prop names.
func NewTable(names ...string) Table {
	t := make(Table, len(names))
	for _, name := range names {
		t[name] = struct{}{}
	}
	return t
}

// Has reports whether name is a style prop.
func (t Table) Has(name string) bool {
	_, ok := t[name]
	return ok
}

// With returns a copy of t extended with names.
func (t Table) With(names ...string) Table {
	out := make(Table, len(t)+len(names))
	for name := range t {
		out[name] = struct{}{}
	}
	for _, name := range names {
		out[name] = struct{}{}
	}
	return out
}

// DefaultTable holds every recognized style prop. Callers must not modify it;
// use With to derive an extended table.
var DefaultTable = NewTable(StyleProps...)

// StyleProps lists the recognized style prop names in camelCase.
var StyleProps = []string{
	// Layout
	"width",
	"height",
	"minWidth",
	"minHeight",
	"maxWidth",
	"maxHeight",
	"display",
	"visibility",
	"overflow",
	"overflowX",
	"overflowY",
	"overflowWrap",
	"whiteSpace",
	"textOverflow",
	"resize",
	"verticalAlign",
	"boxSizing",
	"tableLayout",
	"borderCollapse",
	"borderSpacing",
	"emptyCells",

	// Spacing and Positioning
	"padding",
	"paddingTop",
	"paddingRight",
	"paddingBottom",
	"paddingLeft",
	"margin",
	"marginTop",
	"marginRight",
	"marginBottom",
	"marginLeft",
	"position",
	"top",
	"right",
	"bottom",
	"left",
	"zIndex",
	"float",
	"clear",

	// Typography
	"color",
	"fontFamily",
	"fontSize",
	"fontStyle",
	"fontWeight",
	"fontVariant",
	"lineHeight",
	"letterSpacing",
	"textAlign",
	"textTransform",
	"textDecoration",
	"textDecorationLine",
	"textDecorationStyle",
	"textDecorationColor",
	"textIndent",
	"textJustify",
	"textShadow",
	"wordBreak",
	"wordSpacing",
	"wordWrap",

	// Appearance
	"background",
	"backgroundColor",
	"backgroundImage",
	"backgroundSize",
	"backgroundPosition",
	"backgroundRepeat",
	"backgroundAttachment",
	"backgroundClip",
	"backgroundOrigin",
	"opacity",
	"boxShadow",
	"outline",
	"outlineColor",
	"outlineStyle",
	"outlineWidth",
	"outlineOffset",

	// Border
	"border",
	"borderTop",
	"borderRight",
	"borderBottom",
	"borderLeft",
	"borderWidth",
	"borderTopWidth",
	"borderRightWidth",
	"borderBottomWidth",
	"borderLeftWidth",
	"borderStyle",
	"borderTopStyle",
	"borderRightStyle",
	"borderBottomStyle",
	"borderLeftStyle",
	"borderColor",
	"borderTopColor",
	"borderRightColor",
	"borderBottomColor",
	"borderLeftColor",
	"borderRadius",
	"borderTopLeftRadius",
	"borderTopRightRadius",
	"borderBottomLeftRadius",
	"borderBottomRightRadius",
	"borderImage",
	"borderImageSource",
	"borderImageSlice",
	"borderImageWidth",
	"borderImageOutset",
	"borderImageRepeat",

	// Flex properties
	"flex",
	"flexDirection",
	"flexWrap",
	"flexFlow",
	"flexGrow",
	"flexShrink",
	"flexBasis",
	"justifyContent",
	"alignItems",
	"alignContent",
	"alignSelf",
	"order",
	"gap",
	"rowGap",
	"columnGap",

	// Grid properties
	"grid",
	"gridTemplate",
	"gridTemplateColumns",
	"gridTemplateRows",
	"gridTemplateAreas",
	"gridColumn",
	"gridColumnStart",
	"gridColumnEnd",
	"gridRow",
	"gridRowStart",
	"gridRowEnd",
	"gridArea",
	"gridAutoFlow",
	"gridAutoRows",
	"gridAutoColumns",
	"justifyItems",
	"placeItems",
	"placeContent",
	"placeSelf",

	// Transform and Transitions
	"transform",
	"transformOrigin",
	"transition",
	"transitionProperty",
	"transitionDuration",
	"transitionTimingFunction",
	"transitionDelay",
	"animation",
	"animationName",
	"animationDuration",
	"animationTimingFunction",
	"animationDelay",
	"animationIterationCount",
	"animationDirection",
	"animationFillMode",
	"animationPlayState",

	// Miscellaneous
	"cursor",
	"userSelect",
	"pointerEvents",
	"filter",
	"backdropFilter",
	"willChange",
	"objectFit",
	"objectPosition",
	"content",
	"clipPath",
	"mask",
	"maskImage",
	"scrollBehavior",
	"scrollMargin",
	"scrollPadding",
	"scrollSnapType",
	"scrollSnapAlign",
	"touchAction",
}
