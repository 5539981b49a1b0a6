package iff

import (
	"strings"
	"testing"
	"time"

	"github.com/pangya-tools/panglib/errs"
	"github.com/pangya-tools/panglib/locale"
	"github.com/stretchr/testify/require"
)

func TestSchemaLayout(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		align int
	}{
		{"Date", 16, 2},
		{"Common", 144, 4},
		{"Stats", 10, 2},
		{"Ball", 768, 4},
	}

	schemas := map[string]interface {
		Size() int
		Align() int
	}{
		"Date":   DateSchema,
		"Common": CommonSchema,
		"Stats":  StatsSchema,
		"Ball":   BallSchema,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := schemas[tt.name]
			require.Equal(t, tt.size, s.Size())
			require.Equal(t, tt.align, s.Align())
		})
	}
}

func TestBallSchema_Offsets(t *testing.T) {
	offsets := map[string]int{
		"Header":        0,
		"Unknown":       144,
		"Model":         148,
		"Unknown2":      188,
		"Unknown3":      192,
		"BallSequence1": 196,
		"BallSequence7": 436,
		"BallFx1":       476,
		"BallFx7":       716,
		"Stats":         756,
		"Unknown4":      766,
	}

	for name, want := range offsets {
		got, ok := BallSchema.Offset(name)
		require.True(t, ok, name)
		require.Equal(t, want, got, name)
	}

	for name, want := range map[string]int{"Icon": 49, "Reserved": 89, "Price": 92, "Point": 108, "StartTime": 112, "EndTime": 128} {
		got, ok := CommonSchema.Offset(name)
		require.True(t, ok, name)
		require.Equal(t, want, got, name)
	}
}

func sampleBall() Ball {
	b := Ball{
		Header: Common{
			Active:    1,
			ID:        0x14000001,
			Name:      "Wind Ball",
			Level:     2,
			Icon:      "ball_wind",
			Reserved:  [3]byte{0xAA, 0xBB, 0xCC},
			Price:     1500,
			ShopFlag:  1,
			MoneyFlag: 2,
			Point:     10,
			StartTime: DateFromTime(time.Date(2009, time.March, 4, 10, 30, 0, 0, time.UTC)),
		},
		Unknown:  7,
		Model:    "ball_wind_model",
		Stats:    Stats{Power: 1, Spin: 2, Curve: 3},
		Unknown4: 0xBEEF,
	}
	for i := range b.Sequences {
		b.Sequences[i] = "seq" + string(rune('a'+i))
	}
	b.Effects[0] = "fx_trail"

	return b
}

func TestBall_RecordRoundTrip(t *testing.T) {
	b := sampleBall()

	r, err := b.Record()
	require.NoError(t, err)
	require.Same(t, BallSchema, r.Schema())

	back, err := BallFromRecord(r)
	require.NoError(t, err)
	require.Equal(t, b, back)
}

func TestBall_FileRoundTrip(t *testing.T) {
	f := New(BallSchema, locale.ASCII(), 0, 13)
	balls := []Ball{sampleBall(), {Header: Common{ID: 2, Name: "Plain"}}}
	for _, b := range balls {
		r, err := b.Record()
		require.NoError(t, err)
		require.NoError(t, f.Append(r))
	}

	data, err := f.Bytes()
	require.NoError(t, err)
	require.Len(t, data, HeaderSize+2*BallSchema.Size())

	decoded, err := Decode(data, BallSchema, locale.ASCII())
	require.NoError(t, err)

	got, err := decoded.Balls()
	require.NoError(t, err)
	require.Equal(t, balls, got)
}

func TestBall_StringOverflow(t *testing.T) {
	b := sampleBall()
	b.Model = strings.Repeat("m", AssetWidth+1)

	r, err := b.Record()
	require.NoError(t, err)

	f := New(BallSchema, locale.ASCII(), 0, 1)
	require.NoError(t, f.Append(r))
	_, err = f.Bytes()
	require.ErrorIs(t, err, errs.ErrStringOverflow)
	require.ErrorContains(t, err, "entry 0")
}

func TestBallFromRecord_WrongSchema(t *testing.T) {
	_, err := BallFromRecord(StatsSchema.New())
	require.ErrorIs(t, err, errs.ErrSchemaMismatch)
}

func TestDate_Time(t *testing.T) {
	require.True(t, Date{}.Time().IsZero())
	require.Equal(t, Date{}, DateFromTime(time.Time{}))

	ts := time.Date(2010, time.December, 25, 8, 15, 30, 250*int(time.Millisecond), time.UTC)
	d := DateFromTime(ts)
	require.Equal(t, uint16(2010), d.Year)
	require.Equal(t, uint16(time.Saturday), d.DayOfWeek)
	require.Equal(t, uint16(250), d.Millisecond)
	require.Equal(t, ts, d.Time())
}
