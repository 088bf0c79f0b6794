package client

// Routes are the API paths relative to the server root. Templates with a
// placeholder are the coverage keys of per-entity endpoints.
var Routes = struct {
	Users                 string
	UsersMe               string
	UserByID              string
	Files                 string
	FileByID              string
	Courses               string
	CourseByID            string
	Exercises             string
	ExerciseByID          string
	AuthenticationLogin   string
	AuthenticationRefresh string
}{
	Users:                 "/api/v1/users",
	UsersMe:               "/api/v1/users/me",
	UserByID:              "/api/v1/users/{user_id}",
	Files:                 "/api/v1/files",
	FileByID:              "/api/v1/files/{file_id}",
	Courses:               "/api/v1/courses",
	CourseByID:            "/api/v1/courses/{course_id}",
	Exercises:             "/api/v1/exercises",
	ExerciseByID:          "/api/v1/exercises/{exercise_id}",
	AuthenticationLogin:   "/api/v1/authentication/login",
	AuthenticationRefresh: "/api/v1/authentication/refresh",
}
