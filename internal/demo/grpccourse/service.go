// Package grpccourse implements the CourseService gRPC demo: a single
// GetCourse method returning a fixed course for any id. Messages are
// protobuf, described at runtime from course_service.proto's descriptor.
package grpccourse

import (
	"context"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

const (
	// DefaultAddr is the address the server listens on by default.
	DefaultAddr = ":50051"

	// ServiceName is the fully qualified gRPC service name.
	ServiceName = "course_service.CourseService"

	// GetCourseMethod is the full method name of GetCourse.
	GetCourseMethod = "/" + ServiceName + "/GetCourse"

	// CourseTitle and CourseDescription are returned for every course.
	CourseTitle       = "Автоматизация тестирования API с Python. Расширенный"
	CourseDescription = "Этот курс — погружение в профессию QA Automation Engineer"
)

// CourseServiceServer is the server API of CourseService.
type CourseServiceServer interface {
	GetCourse(ctx context.Context, req *GetCourseRequest) (*GetCourseResponse, error)
}

// CourseServiceDesc describes CourseService for grpc.Server.RegisterService.
var CourseServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CourseServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetCourse", Handler: getCourseHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: ProtoFile,
}

func getCourseHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetCourseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CourseServiceServer).GetCourse(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetCourseMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CourseServiceServer).GetCourse(ctx, req.(*GetCourseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RegisterCourseServiceServer registers srv with s.
func RegisterCourseServiceServer(s grpc.ServiceRegistrar, srv CourseServiceServer) {
	s.RegisterService(&CourseServiceDesc, srv)
}

// Service answers GetCourse with the fixed course.
type Service struct {
	logger *slog.Logger
}

var _ CourseServiceServer = (*Service)(nil)

// NewService creates the course service.
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger.With(slog.String("component", "grpc_course"))}
}

// GetCourse implements CourseServiceServer. Any id, including an empty one,
// is echoed back with the fixed title and description.
func (s *Service) GetCourse(ctx context.Context, req *GetCourseRequest) (*GetCourseResponse, error) {
	courseID := req.CourseID()
	s.logger.InfoContext(ctx, "GetCourse called", slog.String("course_id", courseID))
	return NewGetCourseResponse(courseID, CourseTitle, CourseDescription), nil
}

// NewServer creates a gRPC server with CourseService and server reflection
// registered.
func NewServer(logger *slog.Logger, opts ...grpc.ServerOption) *grpc.Server {
	svc := NewService(logger)
	opts = append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(loggingInterceptor(svc.logger))}, opts...)
	s := grpc.NewServer(opts...)
	RegisterCourseServiceServer(s, svc)
	reflection.Register(s)
	return s
}

func loggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			logger.WarnContext(ctx, "rpc failed",
				slog.String("method", info.FullMethod),
				slog.String("code", status.Code(err).String()),
				slog.String("error", err.Error()))
		}
		return resp, err
	}
}
