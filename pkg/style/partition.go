package style

// Partition splits props into the props named in table and everything else.
//
// Every prop with a non-nil value lands in exactly one of the two results, in
// its original order. Nil-valued props are dropped rather than forwarded.
// Style values are returned as given; Compile resolves them.
func Partition(props Props, table Table) (styleProps, otherProps Props) {
	for _, prop := range props {
		if isNil(prop.Value) {
			continue
		}
		if table.Has(prop.Name) {
			styleProps = append(styleProps, prop)
		} else {
			otherProps = append(otherProps, prop)
		}
	}
	return styleProps, otherProps
}
