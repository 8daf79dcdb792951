package grpc

// proto.go defines the gRPC server interface derived from
// meridian/origination/v1/origination.proto. This file serves as a stand-in
// for buf-generated code. Once `buf generate` is run, replace this file with
// the import from github.com/meridianbank/origination/api/gen/go/meridian/origination/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// OriginationServiceServer is the server API for OriginationService.
// It mirrors the proto-generated interface from meridian.origination.v1.OriginationService.
type OriginationServiceServer interface {
	CreateApplication(context.Context, *CreateApplicationRequestMsg) (*ApplicationResponseMsg, error)
	UpdateDraft(context.Context, *UpdateDraftRequestMsg) (*ApplicationResponseMsg, error)
	SubmitApplication(context.Context, *SubmitApplicationRequestMsg) (*ApplicationResponseMsg, error)
	AdvanceReview(context.Context, *AdvanceReviewRequestMsg) (*ApplicationResponseMsg, error)
	RequestInfo(context.Context, *RequestInfoRequestMsg) (*ApplicationResponseMsg, error)
	ResolveInfo(context.Context, *ResolveInfoRequestMsg) (*ApplicationResponseMsg, error)
	AssessApplication(context.Context, *AssessApplicationRequestMsg) (*ApplicationResponseMsg, error)
	ApproveApplication(context.Context, *ApproveApplicationRequestMsg) (*ApplicationResponseMsg, error)
	RejectApplication(context.Context, *RejectApplicationRequestMsg) (*ApplicationResponseMsg, error)
	DisburseApplication(context.Context, *DisburseApplicationRequestMsg) (*ApplicationResponseMsg, error)
	CancelApplication(context.Context, *CancelApplicationRequestMsg) (*ApplicationResponseMsg, error)
	GetApplication(context.Context, *GetApplicationRequestMsg) (*ApplicationResponseMsg, error)
	ListApplications(context.Context, *ListApplicationsRequestMsg) (*ListApplicationsResponseMsg, error)
	ComputeSchedule(context.Context, *ComputeScheduleRequestMsg) (*ComputeScheduleResponseMsg, error)
	mustEmbedUnimplementedOriginationServiceServer()
}

// UnimplementedOriginationServiceServer provides forward-compatible default implementations.
type UnimplementedOriginationServiceServer struct{}

func (UnimplementedOriginationServiceServer) CreateApplication(context.Context, *CreateApplicationRequestMsg) (*ApplicationResponseMsg, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateApplication not implemented")
}
func (UnimplementedOriginationServiceServer) UpdateDraft(context.Context, *UpdateDraftRequestMsg) (*ApplicationResponseMsg, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateDraft not implemented")
}
func (UnimplementedOriginationServiceServer) SubmitApplication(context.Context, *SubmitApplicationRequestMsg) (*ApplicationResponseMsg, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitApplication not implemented")
}
func (UnimplementedOriginationServiceServer) AdvanceReview(context.Context, *AdvanceReviewRequestMsg) (*ApplicationResponseMsg, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AdvanceReview not implemented")
}
func (UnimplementedOriginationServiceServer) RequestInfo(context.Context, *RequestInfoRequestMsg) (*ApplicationResponseMsg, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RequestInfo not implemented")
}
func (UnimplementedOriginationServiceServer) ResolveInfo(context.Context, *ResolveInfoRequestMsg) (*ApplicationResponseMsg, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveInfo not implemented")
}
func (UnimplementedOriginationServiceServer) AssessApplication(context.Context, *AssessApplicationRequestMsg) (*ApplicationResponseMsg, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AssessApplication not implemented")
}
func (UnimplementedOriginationServiceServer) ApproveApplication(context.Context, *ApproveApplicationRequestMsg) (*ApplicationResponseMsg, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApproveApplication not implemented")
}
func (UnimplementedOriginationServiceServer) RejectApplication(context.Context, *RejectApplicationRequestMsg) (*ApplicationResponseMsg, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RejectApplication not implemented")
}
func (UnimplementedOriginationServiceServer) DisburseApplication(context.Context, *DisburseApplicationRequestMsg) (*ApplicationResponseMsg, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DisburseApplication not implemented")
}
func (UnimplementedOriginationServiceServer) CancelApplication(context.Context, *CancelApplicationRequestMsg) (*ApplicationResponseMsg, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelApplication not implemented")
}
func (UnimplementedOriginationServiceServer) GetApplication(context.Context, *GetApplicationRequestMsg) (*ApplicationResponseMsg, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetApplication not implemented")
}
func (UnimplementedOriginationServiceServer) ListApplications(context.Context, *ListApplicationsRequestMsg) (*ListApplicationsResponseMsg, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListApplications not implemented")
}
func (UnimplementedOriginationServiceServer) ComputeSchedule(context.Context, *ComputeScheduleRequestMsg) (*ComputeScheduleResponseMsg, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ComputeSchedule not implemented")
}
func (UnimplementedOriginationServiceServer) mustEmbedUnimplementedOriginationServiceServer() {}

// RegisterOriginationServiceServer registers the OriginationServiceServer with the gRPC server.
func RegisterOriginationServiceServer(s *grpclib.Server, srv OriginationServiceServer) {
	s.RegisterService(&_OriginationService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _OriginationService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "meridian.origination.v1.OriginationService",
	HandlerType: (*OriginationServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CreateApplication", Handler: _OriginationService_CreateApplication_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "UpdateDraft", Handler: _OriginationService_UpdateDraft_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "SubmitApplication", Handler: _OriginationService_SubmitApplication_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "AdvanceReview", Handler: _OriginationService_AdvanceReview_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "RequestInfo", Handler: _OriginationService_RequestInfo_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "ResolveInfo", Handler: _OriginationService_ResolveInfo_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "AssessApplication", Handler: _OriginationService_AssessApplication_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "ApproveApplication", Handler: _OriginationService_ApproveApplication_Handler},   //nolint:revive // gRPC handler registration
		{MethodName: "RejectApplication", Handler: _OriginationService_RejectApplication_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "DisburseApplication", Handler: _OriginationService_DisburseApplication_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "CancelApplication", Handler: _OriginationService_CancelApplication_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "GetApplication", Handler: _OriginationService_GetApplication_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "ListApplications", Handler: _OriginationService_ListApplications_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "ComputeSchedule", Handler: _OriginationService_ComputeSchedule_Handler},         //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_CreateApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateApplicationRequestMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).CreateApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.origination.v1.OriginationService/CreateApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).CreateApplication(ctx, req.(*CreateApplicationRequestMsg))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_UpdateDraft_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateDraftRequestMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).UpdateDraft(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.origination.v1.OriginationService/UpdateDraft",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).UpdateDraft(ctx, req.(*UpdateDraftRequestMsg))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_SubmitApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitApplicationRequestMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).SubmitApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.origination.v1.OriginationService/SubmitApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).SubmitApplication(ctx, req.(*SubmitApplicationRequestMsg))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_AdvanceReview_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(AdvanceReviewRequestMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).AdvanceReview(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.origination.v1.OriginationService/AdvanceReview",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).AdvanceReview(ctx, req.(*AdvanceReviewRequestMsg))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_RequestInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RequestInfoRequestMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).RequestInfo(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.origination.v1.OriginationService/RequestInfo",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).RequestInfo(ctx, req.(*RequestInfoRequestMsg))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_ResolveInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveInfoRequestMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).ResolveInfo(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.origination.v1.OriginationService/ResolveInfo",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).ResolveInfo(ctx, req.(*ResolveInfoRequestMsg))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_AssessApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(AssessApplicationRequestMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).AssessApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.origination.v1.OriginationService/AssessApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).AssessApplication(ctx, req.(*AssessApplicationRequestMsg))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_ApproveApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApproveApplicationRequestMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).ApproveApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.origination.v1.OriginationService/ApproveApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).ApproveApplication(ctx, req.(*ApproveApplicationRequestMsg))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_RejectApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RejectApplicationRequestMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).RejectApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.origination.v1.OriginationService/RejectApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).RejectApplication(ctx, req.(*RejectApplicationRequestMsg))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_DisburseApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DisburseApplicationRequestMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).DisburseApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.origination.v1.OriginationService/DisburseApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).DisburseApplication(ctx, req.(*DisburseApplicationRequestMsg))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_CancelApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelApplicationRequestMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).CancelApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.origination.v1.OriginationService/CancelApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).CancelApplication(ctx, req.(*CancelApplicationRequestMsg))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_GetApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetApplicationRequestMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).GetApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.origination.v1.OriginationService/GetApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).GetApplication(ctx, req.(*GetApplicationRequestMsg))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_ListApplications_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListApplicationsRequestMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).ListApplications(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.origination.v1.OriginationService/ListApplications",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).ListApplications(ctx, req.(*ListApplicationsRequestMsg))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_ComputeSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ComputeScheduleRequestMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).ComputeSchedule(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.origination.v1.OriginationService/ComputeSchedule",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).ComputeSchedule(ctx, req.(*ComputeScheduleRequestMsg))
	}
	return interceptor(ctx, in, info, handler)
}
