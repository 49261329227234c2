package style

import (
	"sort"
	"strings"
)

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGPosition  = "Position"
	PGRegion    = "Region"
	PGColor     = "Color"
	PGText      = "Text"
	PGFont      = "Font"
	PGColumns   = "Columns"
	PGFlex      = "Flex"
	PGAnimation = "Animation"
	PGX         = "X"
)

// propertyDef describes a CSS property known to the styling engine.
type propertyDef struct {
	group     string
	initial   Property
	inherited bool
}

// registry holds every longhand property the engine knows about. Properties
// missing here, other than the compound shorthands, are not recognized: they
// land in group X and computed style lookups report them as unknown.
var registry = map[string]propertyDef{
	"margin-top":                 {PGMargins, "0px", false},
	"margin-left":                {PGMargins, "0px", false},
	"margin-right":               {PGMargins, "0px", false},
	"margin-bottom":              {PGMargins, "0px", false},
	"padding-top":                {PGPadding, "0px", false},
	"padding-left":               {PGPadding, "0px", false},
	"padding-right":              {PGPadding, "0px", false},
	"padding-bottom":             {PGPadding, "0px", false},
	"border-top-color":           {PGBorder, "currentcolor", false},
	"border-left-color":          {PGBorder, "currentcolor", false},
	"border-right-color":         {PGBorder, "currentcolor", false},
	"border-bottom-color":        {PGBorder, "currentcolor", false},
	"border-top-width":           {PGBorder, "medium", false},
	"border-left-width":          {PGBorder, "medium", false},
	"border-right-width":         {PGBorder, "medium", false},
	"border-bottom-width":        {PGBorder, "medium", false},
	"border-top-style":           {PGBorder, "none", false},
	"border-left-style":          {PGBorder, "none", false},
	"border-right-style":         {PGBorder, "none", false},
	"border-bottom-style":        {PGBorder, "none", false},
	"border-top-left-radius":     {PGBorder, "0px", false},
	"border-top-right-radius":    {PGBorder, "0px", false},
	"border-bottom-left-radius":  {PGBorder, "0px", false},
	"border-bottom-right-radius": {PGBorder, "0px", false},
	"width":                      {PGDimension, "auto", false},
	"height":                     {PGDimension, "auto", false},
	"min-width":                  {PGDimension, "auto", false},
	"min-height":                 {PGDimension, "auto", false},
	"max-width":                  {PGDimension, "none", false},
	"max-height":                 {PGDimension, "none", false},
	"display":                    {PGDisplay, "inline", false},
	"float":                      {PGDisplay, "none", false},
	"visibility":                 {PGDisplay, "visible", true},
	"overflow":                   {PGDisplay, "visible", false},
	"opacity":                    {PGDisplay, "1", false},
	"zoom":                       {PGDisplay, "1", false},
	"cursor":                     {PGDisplay, "auto", true},
	"position":                   {PGPosition, "static", false},
	"top":                        {PGPosition, "auto", false},
	"right":                      {PGPosition, "auto", false},
	"bottom":                     {PGPosition, "auto", false},
	"left":                       {PGPosition, "auto", false},
	"z-index":                    {PGPosition, "auto", false},
	"flow-into":                  {PGRegion, "none", false},
	"flow-from":                  {PGRegion, "none", false},
	"color":                      {PGColor, "canvastext", true},
	"background-color":           {PGColor, "transparent", false},
	"fill-opacity":               {PGColor, "1", true},
	"direction":                  {PGText, "ltr", true},
	"white-space":                {PGText, "normal", true},
	"word-spacing":               {PGText, "normal", true},
	"letter-spacing":             {PGText, "normal", true},
	"word-break":                 {PGText, "normal", true},
	"word-wrap":                  {PGText, "normal", true},
	"overflow-wrap":              {PGText, "normal", true},
	"hyphens":                    {PGText, "manual", true},
	"text-align":                 {PGText, "start", true},
	"text-indent":                {PGText, "0px", true},
	"orphans":                    {PGText, "2", true},
	"widows":                     {PGText, "2", true},
	"quotes":                     {PGText, "auto", true},
	"font-size":                  {PGFont, "medium", true},
	"font-weight":                {PGFont, "400", true},
	"font-style":                 {PGFont, "normal", true},
	"font-family":                {PGFont, "serif", true},
	"line-height":                {PGFont, "normal", true},
	"column-count":               {PGColumns, "auto", false},
	"column-gap":                 {PGColumns, "normal", false},
	"column-width":               {PGColumns, "auto", false},
	"box-sizing":                 {PGDimension, "content-box", false},
	"flex-basis":                 {PGFlex, "auto", false},
	"flex-direction":             {PGFlex, "row", false},
	"flex-grow":                  {PGFlex, "0", false},
	"flex-shrink":                {PGFlex, "1", false},
	"flex-wrap":                  {PGFlex, "nowrap", false},
	"order":                      {PGFlex, "0", false},
	"align-content":              {PGFlex, "normal", false},
	"align-items":                {PGFlex, "normal", false},
	"align-self":                 {PGFlex, "auto", false},
	"justify-content":            {PGFlex, "normal", false},
	"animation-name":             {PGAnimation, "none", false},
	"animation-duration":         {PGAnimation, "0s", false},
	"animation-delay":            {PGAnimation, "0s", false},
	"animation-direction":        {PGAnimation, "normal", false},
	"animation-fill-mode":        {PGAnimation, "none", false},
	"animation-iteration-count":  {PGAnimation, "1", false},
	"animation-play-state":       {PGAnimation, "running", false},
	"animation-timing-function":  {PGAnimation, "ease", false},
	"transition-property":        {PGAnimation, "all", false},
	"transition-duration":        {PGAnimation, "0s", false},
	"transition-delay":           {PGAnimation, "0s", false},
	"transition-timing-function": {PGAnimation, "ease", false},
	"transform":                  {PGDisplay, "none", false},
	"transform-origin":           {PGDisplay, "50% 50%", false},
	"overflow-x":                 {PGDisplay, "visible", false},
	"overflow-y":                 {PGDisplay, "visible", false},
	"clear":                      {PGDisplay, "none", false},
	"pointer-events":             {PGDisplay, "auto", true},
	"box-shadow":                 {PGDisplay, "none", false},
	"filter":                     {PGDisplay, "none", false},
	"background-image":           {PGColor, "none", false},
	"background-repeat":          {PGColor, "repeat", false},
	"stroke-opacity":             {PGColor, "1", true},
	"text-decoration-line":       {PGText, "none", false},
	"text-transform":             {PGText, "none", true},
	"text-overflow":              {PGText, "clip", false},
	"vertical-align":             {PGText, "baseline", false},
	"font-variant":               {PGFont, "normal", true},
	"table-layout":               {PGX, "auto", false},
	"border-collapse":            {PGX, "separate", true},
	"list-style-type":            {PGX, "disc", true},
	"list-style-position":        {PGX, "outside", true},
	"list-style-image":           {PGX, "none", true},
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	if def, found := registry[key]; found {
		return def.group
	}
	return PGX
}

// IsKnownProperty returns true if key denotes a (longhand) CSS property
// the styling engine is able to compute.
func IsKnownProperty(key string) bool {
	_, found := registry[key]
	return found
}

// IsCascading returns wether the standard behaviour for a propery is to be
// inherited or not, i.e., a call to retrieve its value will cascade.
func IsCascading(key string) bool {
	if strings.HasPrefix(key, "list-style") {
		return true
	}
	return registry[key].inherited
}

// IsRecognizedProperty returns true for known longhand properties and for
// the compound shorthands of SplitCompoundProperty.
func IsRecognizedProperty(key string) bool {
	return IsKnownProperty(key) || IsCompoundProperty(key)
}

// InitialValue returns the CSS initial value of a property, or NullStyle
// for unknown properties.
func InitialValue(key string) Property {
	return registry[key].initial
}

// KnownProperties returns the keys of all known properties, sorted.
func KnownProperties() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
