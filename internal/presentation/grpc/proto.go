package grpc

// proto.go defines the gRPC service for quantumfraud/v1/fraud_detection.proto
// by hand. Messages are plain structs carried by the JSON codec in codec.go.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Full method names of FraudDetectionService.
const (
	FraudDetectionServiceName                          = "quantumfraud.v1.FraudDetectionService"
	FraudDetectionService_Detect_FullMethodName        = "/quantumfraud.v1.FraudDetectionService/Detect"
	FraudDetectionService_GetBenchmarks_FullMethodName = "/quantumfraud.v1.FraudDetectionService/GetBenchmarks"
)

// FraudDetectionServiceServer is the server API for FraudDetectionService.
type FraudDetectionServiceServer interface {
	Detect(context.Context, *DetectRequest) (*DetectResponse, error)
	GetBenchmarks(context.Context, *GetBenchmarksRequest) (*GetBenchmarksResponse, error)
	mustEmbedUnimplementedFraudDetectionServiceServer()
}

// UnimplementedFraudDetectionServiceServer provides forward-compatible default implementations.
type UnimplementedFraudDetectionServiceServer struct{}

func (UnimplementedFraudDetectionServiceServer) Detect(context.Context, *DetectRequest) (*DetectResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Detect not implemented")
}
func (UnimplementedFraudDetectionServiceServer) GetBenchmarks(context.Context, *GetBenchmarksRequest) (*GetBenchmarksResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBenchmarks not implemented")
}
func (UnimplementedFraudDetectionServiceServer) mustEmbedUnimplementedFraudDetectionServiceServer() {}

// RegisterFraudDetectionServiceServer registers the server with the gRPC server.
func RegisterFraudDetectionServiceServer(s grpclib.ServiceRegistrar, srv FraudDetectionServiceServer) {
	s.RegisterService(&_FraudDetectionService_serviceDesc, srv)
}

var _FraudDetectionService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: FraudDetectionServiceName,
	HandlerType: (*FraudDetectionServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "Detect", Handler: _FraudDetectionService_Detect_Handler},
		{MethodName: "GetBenchmarks", Handler: _FraudDetectionService_GetBenchmarks_Handler},
	},
	Streams:  []grpclib.StreamDesc{},
	Metadata: "quantumfraud/v1/fraud_detection.proto",
}

func _FraudDetectionService_Detect_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(DetectRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FraudDetectionServiceServer).Detect(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: FraudDetectionService_Detect_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FraudDetectionServiceServer).Detect(ctx, req.(*DetectRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func _FraudDetectionService_GetBenchmarks_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(GetBenchmarksRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FraudDetectionServiceServer).GetBenchmarks(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: FraudDetectionService_GetBenchmarks_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FraudDetectionServiceServer).GetBenchmarks(ctx, req.(*GetBenchmarksRequest))
	}
	return interceptor(ctx, req, info, handler)
}
