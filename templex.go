// Package templex renders logic-lite text templates.
//
// A template is plain text with directive markers between {{ and }}:
//
//	Hello, {{ user.name }}!
//	{{#IF user.admin}}You are an admin.{{#ELSE}}Welcome.{{/IF}}
//	{{#EACH items AS item}}- {{ item.title }}
//	{{/EACH}}
//	Time: {{ clock.now() }}
//	{{#INCLUDE footerPath}}
//	{{#RENDER partials/signature.txt}}
//
// There is no expression language and no parse tree. Rendering folds the
// text through an ordered list of stages, each one a self-contained rewrite
// of the whole string:
//
//	Include -> Render -> Each -> If -> Function -> Variable
//
// EACH bodies and RENDER targets are rendered through the full stage list
// again, with the current context (plus the loop alias for EACH).
//
// # Basic Usage
//
//	engine := templex.MustNew()
//	tmpl, err := engine.FromText("Hello, {{ name }}!")
//	result, err := tmpl.Render(ctx, map[string]any{"name": "World"})
//	// result: "Hello, World!"
//
// # Failure Policy
//
// By default a directive that cannot be satisfied is left in the output
// unchanged (a failing condition counts as false). Use WithRaiseOnError or
// WithStageRaise to turn failures into errors instead:
//
//	engine := templex.MustNew(templex.WithRaiseOnError(true))
//	_, err := engine.Render(ctx, "{{ missing }}", nil)
//	// templex.IsRenderError(err) == true
//
// # Custom Stages
//
// Any type implementing Stage can be inserted into a template's stage list:
//
//	tmpl.InsertStage(0, templex.StageFunc{StageName: "upper", Fn: fn})
//
// # Text Sources
//
// INCLUDE, RENDER and Engine.FromSource read text through a TextSource. The
// filesystem is the default; MemorySource, FSSource and PostgresSource are
// provided, and further sources can be registered with RegisterSourceDriver.
package templex

import "context"

// Render builds a template from text with a default engine and renders it
// with data.
func Render(ctx context.Context, text string, data map[string]any) (string, error) {
	engine, err := New()
	if err != nil {
		return "", err
	}
	return engine.Render(ctx, text, data)
}
