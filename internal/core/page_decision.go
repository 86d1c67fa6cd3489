package core

type Mode int

const (
	ModeProd Mode = iota
	ModeDev
)

func (m Mode) String() string {
	if m == ModeDev {
		return "dev"
	}
	return "prod"
}

const NotFoundPath = "/404"

type PageKind int

const (
	PageHome PageKind = iota
	PageNotFound
)

// Route describes one page the site serves and exports.
type Route struct {
	Path string
	Kind PageKind
}

// Routes lists every page the site renders.
func Routes() []Route {
	return []Route{
		{Path: "/", Kind: PageHome},
		{Path: NotFoundPath, Kind: PageNotFound},
	}
}

type PageAction int

const (
	ActionServeCached PageAction = iota
	ActionRender
	ActionNotFound
)

type PageRequest struct {
	IsDev       bool
	RequestPath string
	HasCache    bool
}

type PageDecision struct {
	Action PageAction
	Kind   PageKind
	Status int
}

// ResolveRoute maps a request path to the page that answers it and the
// status code to answer with.
func ResolveRoute(requestPath string) (PageKind, int) {
	path := NormalizePath(requestPath)
	for _, route := range Routes() {
		if route.Path == path && route.Kind != PageNotFound {
			return route.Kind, 200
		}
	}
	return PageNotFound, 404
}

// DecidePageAction picks how a request for a page is answered. Prod mode
// serves the pre-rendered document when one is cached; dev mode always
// renders so config edits show up on the next request.
func DecidePageAction(req PageRequest) PageDecision {
	kind, status := ResolveRoute(req.RequestPath)

	action := ActionRender
	switch {
	case !req.IsDev && req.HasCache:
		action = ActionServeCached
	case kind == PageNotFound:
		action = ActionNotFound
	}

	return PageDecision{Action: action, Kind: kind, Status: status}
}
