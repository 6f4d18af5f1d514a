package profile

import "ciao/internal/domain/profile"

type profileOutput struct {
	Body profile.Profile
}

type saveInput struct {
	Body profile.Profile
}

type qrInput struct {
	Size int `query:"size" default:"256" minimum:"64" maximum:"2048" doc:"Edge length of the PNG in pixels"`
}

type pngOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}
