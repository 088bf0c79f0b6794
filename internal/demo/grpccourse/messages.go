package grpccourse

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
)

// ProtoFile is the path course_service.proto is registered under.
const ProtoFile = "course_service.proto"

// courseServiceFile describes course_service.proto:
//
//	message GetCourseRequest  { string course_id = 1; }
//	message GetCourseResponse { string course_id = 1; string title = 2; string description = 3; }
//	service CourseService { rpc GetCourse (GetCourseRequest) returns (GetCourseResponse); }
//
// It is registered in protoregistry.GlobalFiles so server reflection can
// serve it.
var courseServiceFile = func() protoreflect.FileDescriptor {
	fdp := &descriptorpb.FileDescriptorProto{
		Name:    proto.String(ProtoFile),
		Package: proto.String("course_service"),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name:  proto.String("GetCourseRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{stringField("course_id", 1)},
			},
			{
				Name: proto.String("GetCourseResponse"),
				Field: []*descriptorpb.FieldDescriptorProto{
					stringField("course_id", 1),
					stringField("title", 2),
					stringField("description", 3),
				},
			},
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("CourseService"),
			Method: []*descriptorpb.MethodDescriptorProto{{
				Name:       proto.String("GetCourse"),
				InputType:  proto.String(".course_service.GetCourseRequest"),
				OutputType: proto.String(".course_service.GetCourseResponse"),
			}},
		}},
	}

	fd, err := protodesc.NewFile(fdp, nil)
	if err != nil {
		panic("grpccourse: invalid descriptor: " + err.Error())
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic("grpccourse: register descriptor: " + err.Error())
	}
	return fd
}()

var (
	getCourseRequestDesc  = courseServiceFile.Messages().ByName("GetCourseRequest")
	getCourseResponseDesc = courseServiceFile.Messages().ByName("GetCourseResponse")
)

func stringField(name string, number int32) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
	}
}

func getString(m protoreflect.Message, name protoreflect.Name) string {
	return m.Get(m.Descriptor().Fields().ByName(name)).String()
}

func setString(m protoreflect.Message, name protoreflect.Name, value string) {
	m.Set(m.Descriptor().Fields().ByName(name), protoreflect.ValueOfString(value))
}

// GetCourseRequest asks for one course. The zero value is an empty request.
type GetCourseRequest struct {
	msg *dynamicpb.Message
}

var _ proto.Message = (*GetCourseRequest)(nil)

// NewGetCourseRequest builds a request for courseID.
func NewGetCourseRequest(courseID string) *GetCourseRequest {
	r := new(GetCourseRequest)
	setString(r.ProtoReflect(), "course_id", courseID)
	return r
}

// ProtoReflect implements proto.Message.
func (r *GetCourseRequest) ProtoReflect() protoreflect.Message {
	if r.msg == nil {
		r.msg = dynamicpb.NewMessage(getCourseRequestDesc)
	}
	return r.msg
}

// CourseID returns the course_id field.
func (r *GetCourseRequest) CourseID() string {
	if r == nil {
		return ""
	}
	return getString(r.ProtoReflect(), "course_id")
}

// GetCourseResponse describes a course.
type GetCourseResponse struct {
	msg *dynamicpb.Message
}

var _ proto.Message = (*GetCourseResponse)(nil)

// NewGetCourseResponse builds a response.
func NewGetCourseResponse(courseID, title, description string) *GetCourseResponse {
	r := new(GetCourseResponse)
	m := r.ProtoReflect()
	setString(m, "course_id", courseID)
	setString(m, "title", title)
	setString(m, "description", description)
	return r
}

// ProtoReflect implements proto.Message.
func (r *GetCourseResponse) ProtoReflect() protoreflect.Message {
	if r.msg == nil {
		r.msg = dynamicpb.NewMessage(getCourseResponseDesc)
	}
	return r.msg
}

// CourseID returns the course_id field.
func (r *GetCourseResponse) CourseID() string {
	if r == nil {
		return ""
	}
	return getString(r.ProtoReflect(), "course_id")
}

// Title returns the title field.
func (r *GetCourseResponse) Title() string {
	if r == nil {
		return ""
	}
	return getString(r.ProtoReflect(), "title")
}

// Description returns the description field.
func (r *GetCourseResponse) Description() string {
	if r == nil {
		return ""
	}
	return getString(r.ProtoReflect(), "description")
}
