package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/coursekit/course-api/internal/client"
	"github.com/coursekit/course-api/internal/schema"
)

const (
	flagUploadFile = "upload-file"
	flagEmail      = "email"
	flagPassword   = "password"
	flagField      = "field"
)

var fieldFlag = &cli.StringFlag{
	Name:  flagField,
	Usage: "print only the value at a dotted JSON path, e.g. user.id",
}

var credentialFlags = []cli.Flag{
	&cli.StringFlag{Name: flagEmail, Usage: "user email", Required: true},
	&cli.StringFlag{Name: flagPassword, Usage: "user password", Required: true, EnvVars: []string{"COURSE_PASSWORD"}},
	fieldFlag,
}

var createExerciseCmd = &cli.Command{
	Name:  "create-exercise",
	Usage: "register a random user, upload a file, then create a course and an exercise",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  flagUploadFile,
			Usage: "local file uploaded as the course preview",
			Value: "./testdata/files/image.png",
		},
	},
	Action: func(c *cli.Context) error {
		s, err := newSession(c)
		if err != nil {
			return err
		}
		defer s.finish()
		return s.createExercise(c.Context, c.String(flagUploadFile))
	},
}

func (s *session) createExercise(ctx context.Context, uploadFile string) error {
	public, err := client.NewPublicHTTPClient(s.cfg)
	if err != nil {
		return err
	}

	createUser := schema.NewCreateUserRequest()
	resp, err := client.NewPublicUsersClient(public).CreateUserAPI(ctx, createUser)
	if err := checkOK("create user", resp, err); err != nil {
		return err
	}
	if err := printResponse(s.out, "Create user data", resp.Body, ""); err != nil {
		return err
	}
	userID, err := stringField(resp.Body, "user", "id")
	if err != nil {
		return err
	}

	cache := client.NewClientCache(s.cfg)
	private, err := cache.PrivateHTTPClient(ctx, client.AuthenticationUser{
		Email:    createUser.Email,
		Password: createUser.Password,
	})
	if err != nil {
		return err
	}

	resp, err = client.NewFilesClient(private, nil).CreateFileAPI(ctx, schema.NewCreateFileRequest(uploadFile))
	if err := checkOK("create file", resp, err); err != nil {
		return err
	}
	if err := printResponse(s.out, "Create file data", resp.Body, ""); err != nil {
		return err
	}
	fileID, err := stringField(resp.Body, "file", "id")
	if err != nil {
		return err
	}

	createCourse := schema.NewCreateCourseRequest()
	createCourse.PreviewFileID = fileID
	createCourse.CreatedByUserID = userID
	resp, err = client.NewCoursesClient(private).CreateCourseAPI(ctx, createCourse)
	if err := checkOK("create course", resp, err); err != nil {
		return err
	}
	if err := printResponse(s.out, "Create course data", resp.Body, ""); err != nil {
		return err
	}
	courseID, err := stringField(resp.Body, "course", "id")
	if err != nil {
		return err
	}

	createExercise := schema.NewCreateExerciseRequest()
	createExercise.CourseID = courseID
	resp, err = client.NewExercisesClient(private).CreateExerciseAPI(ctx, createExercise)
	if err := checkOK("create exercise", resp, err); err != nil {
		return err
	}
	return printResponse(s.out, "Create exercise data", resp.Body, "")
}

var loginCmd = &cli.Command{
	Name:  "login",
	Usage: "log in and print the issued tokens",
	Flags: credentialFlags,
	Action: func(c *cli.Context) error {
		s, err := newSession(c)
		if err != nil {
			return err
		}
		defer s.finish()

		public, err := client.NewPublicHTTPClient(s.cfg)
		if err != nil {
			return err
		}
		resp, err := client.NewAuthenticationClient(public).LoginAPI(c.Context, schema.LoginRequest{
			Email:    c.String(flagEmail),
			Password: c.String(flagPassword),
		})
		if err := checkOK("login", resp, err); err != nil {
			return err
		}
		return printResponse(s.out, "Login data", resp.Body, c.String(flagField))
	},
}

var meCmd = &cli.Command{
	Name:  "me",
	Usage: "print the user the credentials belong to",
	Flags: credentialFlags,
	Action: func(c *cli.Context) error {
		s, err := newSession(c)
		if err != nil {
			return err
		}
		defer s.finish()

		private, err := client.NewClientCache(s.cfg).PrivateHTTPClient(c.Context, client.AuthenticationUser{
			Email:    c.String(flagEmail),
			Password: c.String(flagPassword),
		})
		if err != nil {
			return err
		}
		resp, err := client.NewPrivateUsersClient(private).GetUserMeAPI(c.Context)
		if err := checkOK("get user", resp, err); err != nil {
			return err
		}
		return printResponse(s.out, "User data", resp.Body, c.String(flagField))
	},
}
