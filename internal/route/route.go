// Package route names the screens the application navigates between.
package route

// Destination is a logical screen. Handlers translate it into a redirect;
// services only ever return one of the values below.
type Destination string

const (
	None       Destination = ""
	Home       Destination = "home"
	Login      Destination = "login"
	Signup     Destination = "signup"
	Dashboard  Destination = "dashboard"
	Onboarding Destination = "onboarding"
)

var paths = map[Destination]string{
	Home:       "/",
	Login:      "/login",
	Signup:     "/signup",
	Dashboard:  "/dashboard",
	Onboarding: "/onboarding",
}

// Path returns the URL path for d, or "/" for an unknown destination.
func (d Destination) Path() string {
	if p, ok := paths[d]; ok {
		return p
	}
	return "/"
}

func (d Destination) String() string {
	return string(d)
}
