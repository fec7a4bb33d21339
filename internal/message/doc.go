// Package message parses interpolation templates into an ordered AST.
//
// Grammar:
//
//	Hello {name}                      parameter, type "unknown"
//	Hello {name?:string|upper}        optional typed parameter with a formatter
//	{choice|{ male: his, *: their }}  switch-case transform, `\,` escapes a comma
//	{{count:item|items}}              plural group with an explicit count key
//	{count:number} apple{{s}}         plural group inheriting the count key
//
// Plural values map positionally: one value fills "other"; two fill "one"
// and "other"; three fill "zero", "one" and "other"; six fill every form
// from "zero" to "other".
//
// Parsing only establishes structure. Selecting plural forms, switch-case
// branches and applying formatters is left to the renderer consuming the
// ParsedMessage.
package message
