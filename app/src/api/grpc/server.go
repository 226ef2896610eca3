package grpcapi

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "wip-service/app/src/api/grpc/pb"
	"wip-service/app/src/domain"
	"wip-service/app/src/infra"
	"wip-service/app/src/shared/iso8601"
)

// NewServer constructs a gRPC server exposing the TimestampService transport.
func NewServer(clock domain.Clock, logger *infra.Logger) *grpc.Server {
	interceptors := []grpc.UnaryServerInterceptor{
		loggingInterceptor(logger),
		infra.GRPCUnaryInterceptor(),
	}

	server := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))
	pb.RegisterTimestampServiceServer(server, &timestampServer{clock: clock})
	return server
}

type timestampServer struct {
	pb.UnimplementedTimestampServiceServer
	clock domain.Clock
}

// Parse maps text to its Zulu form. Malformed input is not an RPC failure;
// the diagnostic travels in the reply.
func (s *timestampServer) Parse(ctx context.Context, req *pb.ParseRequest) (*pb.TimestampReply, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request must not be nil")
	}

	ts := iso8601.Parse(req.GetText())
	infra.RecordTimestampParse(ts.HasError())
	return adjustedReply(ts, req.GetPrecision())
}

func (s *timestampServer) Now(ctx context.Context, req *pb.NowRequest) (*pb.TimestampReply, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request must not be nil")
	}
	return adjustedReply(iso8601.FromEpochMillis(s.clock.NowMillis()), req.GetPrecision())
}

func (s *timestampServer) FromEpochMillis(ctx context.Context, req *pb.EpochMillisRequest) (*pb.TimestampReply, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request must not be nil")
	}
	return adjustedReply(iso8601.FromEpochMillis(req.GetEpochMillis()), req.GetPrecision())
}

func adjustedReply(ts iso8601.Timestamp, precision string) (*pb.TimestampReply, error) {
	if ts.HasError() {
		return &pb.TimestampReply{Value: ts.Value(), Error: ts.Err()}, nil
	}

	if precision != "" {
		length, err := iso8601.ParseTimeLength(precision)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		ts = ts.AdjustTo(length)
		if ts.HasError() {
			return &pb.TimestampReply{Value: ts.Value(), Error: ts.Err()}, nil
		}
	}
	return &pb.TimestampReply{Value: ts.Value()}, nil
}

func loggingInterceptor(logger *infra.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		duration := time.Since(start)
		if err != nil {
			logger.Printf(ctx, "gRPC %s failed in %s: %v", info.FullMethod, duration, err)
		} else {
			logger.Printf(ctx, "gRPC %s completed in %s", info.FullMethod, duration)
		}
		return resp, err
	}
}
