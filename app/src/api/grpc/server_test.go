package grpcapi

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "wip-service/app/src/api/grpc/pb"
	"wip-service/app/src/domain"
	"wip-service/app/src/infra"
)

// 2022-07-27T16:38:00Z
const fixedMillis = int64(1658939880000)

func fixedClock() domain.Clock {
	return domain.ClockFunc(func() int64 { return fixedMillis })
}

func TestNewServerRegistersService(t *testing.T) {
	srv := NewServer(fixedClock(), infra.NewLogger(bytes.NewBuffer(nil), "test"))
	info := srv.GetServiceInfo()
	assert.Contains(t, info, "wip.v1.TimestampService")
}

func TestParseValidatesRequest(t *testing.T) {
	server := &timestampServer{clock: fixedClock()}

	_, err := server.Parse(context.Background(), nil)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestParseReturnsZuluValue(t *testing.T) {
	server := &timestampServer{clock: fixedClock()}

	reply, err := server.Parse(context.Background(), &pb.ParseRequest{Text: "2022-07-27T16:38:00+01:00"})

	require.NoError(t, err)
	assert.Equal(t, "2022-07-27T15:38:00Z", reply.GetValue())
	assert.Empty(t, reply.GetError())
}

func TestParseCarriesDiagnosticInReply(t *testing.T) {
	server := &timestampServer{clock: fixedClock()}

	reply, err := server.Parse(context.Background(), &pb.ParseRequest{Text: "2022-07-27"})

	require.NoError(t, err)
	assert.Equal(t, "2022-07-27", reply.GetValue())
	assert.Equal(t, "no date time seperator 'T'", reply.GetError())
}

func TestParseAppliesPrecision(t *testing.T) {
	server := &timestampServer{clock: fixedClock()}

	reply, err := server.Parse(context.Background(), &pb.ParseRequest{
		Text:      "2022-07-27T16:38:34.123456789Z",
		Precision: "millis",
	})

	require.NoError(t, err)
	assert.Equal(t, "2022-07-27T16:38:34.123Z", reply.GetValue())
}

func TestParseRejectsUnknownPrecision(t *testing.T) {
	server := &timestampServer{clock: fixedClock()}

	_, err := server.Parse(context.Background(), &pb.ParseRequest{
		Text:      "2022-07-27T16:38:00Z",
		Precision: "fortnight",
	})

	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestNowUsesClock(t *testing.T) {
	server := &timestampServer{clock: fixedClock()}

	reply, err := server.Now(context.Background(), &pb.NowRequest{})

	require.NoError(t, err)
	assert.Equal(t, "2022-07-27T16:38:00.000Z", reply.GetValue())
}

func TestNowAppliesPrecision(t *testing.T) {
	server := &timestampServer{clock: fixedClock()}

	reply, err := server.Now(context.Background(), &pb.NowRequest{Precision: "minute"})

	require.NoError(t, err)
	assert.Equal(t, "2022-07-27T16:38Z", reply.GetValue())
}

func TestFromEpochMillis(t *testing.T) {
	server := &timestampServer{clock: fixedClock()}

	reply, err := server.FromEpochMillis(context.Background(), &pb.EpochMillisRequest{EpochMillis: 0})

	require.NoError(t, err)
	assert.Equal(t, "1970-01-01T00:00:00.000Z", reply.GetValue())
}

func TestFromEpochMillisValidatesRequest(t *testing.T) {
	server := &timestampServer{clock: fixedClock()}

	_, err := server.FromEpochMillis(context.Background(), nil)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
