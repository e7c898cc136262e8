package posts

// staticParams is the fixed set of post identifiers pre-rendered at build
// time. Identifiers outside this set are still served through the on-demand
// fallback path.
var staticParams = [...]string{"1", "2", "3", "4"}

// StaticParams returns the ordered identifiers of the posts that get a
// pre-rendered page. The returned slice is a copy, so callers cannot mutate
// the static set.
func StaticParams() []string {
	params := make([]string, len(staticParams))
	copy(params, staticParams[:])
	return params
}
