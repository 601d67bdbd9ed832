package constants

// Icon glyphs for use with icon fonts (Material Design Icons).
// These Unicode code points render as icons when used with the theme's
// icon font. They cover the view-switching segments most apps need.
const (
	ViewList    = "\U000F0279" // List layout icon
	ViewGrid    = "\U000F0101" // Grid layout icon
	ViewDetails = "\U000F01BE" // Detail layout icon

	SortAscending  = "\U000F0045" // Ascending sort arrow
	SortDescending = "\U000F004B" // Descending sort arrow

	FilterAll      = "\U000F0232" // Unfiltered funnel
	FilterFavorite = "\U000F02D1" // Favorites heart
)
