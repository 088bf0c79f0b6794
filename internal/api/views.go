package api

import (
	"net/url"

	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/schema"
	"github.com/coursekit/course-api/internal/service"
	"github.com/coursekit/course-api/internal/service/auth"
)

func userView(u *domain.User) schema.User {
	return schema.User{
		ID:         u.ID.String(),
		Email:      u.Email,
		LastName:   u.LastName,
		FirstName:  u.FirstName,
		MiddleName: u.MiddleName,
	}
}

// fileURL returns {publicBaseURL}static/{directory}/{filename}, escaping
// each path segment.
func fileURL(publicBaseURL string, f *domain.File) string {
	return publicBaseURL + "static/" + escapePath(f.Directory) + "/" + url.PathEscape(f.Filename)
}

func escapePath(p string) string {
	u := url.URL{Path: p}
	return u.EscapedPath()
}

func fileView(publicBaseURL string, f *domain.File) schema.File {
	return schema.File{
		ID:        f.ID.String(),
		URL:       fileURL(publicBaseURL, f),
		Filename:  f.Filename,
		Directory: f.Directory,
	}
}

func courseView(publicBaseURL string, d *service.CourseDetails) schema.Course {
	return schema.Course{
		ID:            d.Course.ID.String(),
		Title:         d.Course.Title,
		MaxScore:      d.Course.MaxScore,
		MinScore:      d.Course.MinScore,
		Description:   d.Course.Description,
		PreviewFile:   fileView(publicBaseURL, d.PreviewFile),
		EstimatedTime: d.Course.EstimatedTime,
		CreatedByUser: userView(d.CreatedByUser),
	}
}

func exerciseView(e *domain.Exercise) schema.Exercise {
	return schema.Exercise{
		ID:            e.ID.String(),
		Title:         e.Title,
		CourseID:      e.CourseID.String(),
		MaxScore:      e.MaxScore,
		MinScore:      e.MinScore,
		OrderIndex:    e.OrderIndex,
		Description:   e.Description,
		EstimatedTime: e.EstimatedTime,
	}
}

func tokenView(p *auth.TokenPair) schema.TokenResponse {
	return schema.TokenResponse{Token: schema.Token{
		TokenType:    p.TokenType,
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
	}}
}
