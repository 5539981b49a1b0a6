package iff

import (
	"fmt"
	"time"

	"github.com/pangya-tools/panglib/errs"
	"github.com/pangya-tools/panglib/record"
)

// Date mirrors a Windows SYSTEMTIME.
type Date struct {
	Year, Month, DayOfWeek, Day       uint16
	Hour, Minute, Second, Millisecond uint16
}

// Time converts d to a UTC time. The zero Date converts to the zero time.
func (d Date) Time() time.Time {
	if d == (Date{}) {
		return time.Time{}
	}

	return time.Date(int(d.Year), time.Month(d.Month), int(d.Day),
		int(d.Hour), int(d.Minute), int(d.Second), int(d.Millisecond)*int(time.Millisecond), time.UTC)
}

// DateFromTime converts t to a Date. The zero time converts to the zero Date.
func DateFromTime(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	t = t.UTC()

	return Date{
		Year:        uint16(t.Year()),                               //nolint:gosec
		Month:       uint16(t.Month()),                              //nolint:gosec
		DayOfWeek:   uint16(t.Weekday()),                            //nolint:gosec
		Day:         uint16(t.Day()),                                //nolint:gosec
		Hour:        uint16(t.Hour()),                               //nolint:gosec
		Minute:      uint16(t.Minute()),                             //nolint:gosec
		Second:      uint16(t.Second()),                             //nolint:gosec
		Millisecond: uint16(t.Nanosecond() / int(time.Millisecond)), //nolint:gosec
	}
}

// Common is the item header shared by every category.
type Common struct {
	Active        uint32
	ID            uint32
	Name          string
	Level         uint8
	Icon          string
	Reserved      [3]byte
	Price         uint32
	DiscountPrice uint32
	UsedPrice     uint32
	ShopFlag      uint8
	MoneyFlag     uint8
	TimeFlag      uint8
	TimeByte      uint8
	Point         uint32
	StartTime     Date
	EndTime       Date
}

// Stats holds the stat modifiers of an item.
type Stats struct {
	Power, Control, Accuracy, Spin, Curve uint16
}

// Ball is one entry of Ball.iff.
type Ball struct {
	Header    Common
	Unknown   uint32
	Model     string
	Unknown2  uint32
	Unknown3  uint32
	Sequences [BallSequenceCount]string
	Effects   [BallEffectCount]string
	Stats     Stats
	Unknown4  uint16
}

// BallFromRecord converts a BallSchema record to a Ball.
func BallFromRecord(r *record.Record) (Ball, error) {
	if r.Schema() != BallSchema {
		return Ball{}, fmt.Errorf("%s record: %w", r.Schema().Name(), errs.ErrSchemaMismatch)
	}

	fr := &fieldReader{r: r}
	b := Ball{
		Header:   readCommon(fr.nested("Header")),
		Unknown:  fr.u32("Unknown"),
		Model:    fr.str("Model"),
		Unknown2: fr.u32("Unknown2"),
		Unknown3: fr.u32("Unknown3"),
		Unknown4: fr.u16("Unknown4"),
	}
	for i := range b.Sequences {
		b.Sequences[i] = fr.str(sequenceField(i))
	}
	for i := range b.Effects {
		b.Effects[i] = fr.str(effectField(i))
	}

	st := fr.nested("Stats")
	b.Stats = Stats{
		Power:    st.u16("Power"),
		Control:  st.u16("Control"),
		Accuracy: st.u16("Accuracy"),
		Spin:     st.u16("Spin"),
		Curve:    st.u16("Curve"),
	}

	if err := fr.firstErr(); err != nil {
		return Ball{}, err
	}

	return b, nil
}

func readCommon(fr *fieldReader) Common {
	c := Common{
		Active:        fr.u32("Active"),
		ID:            fr.u32("ID"),
		Name:          fr.str("Name"),
		Level:         fr.u8("Level"),
		Icon:          fr.str("Icon"),
		Price:         fr.u32("Price"),
		DiscountPrice: fr.u32("DiscountPrice"),
		UsedPrice:     fr.u32("UsedPrice"),
		ShopFlag:      fr.u8("ShopFlag"),
		MoneyFlag:     fr.u8("MoneyFlag"),
		TimeFlag:      fr.u8("TimeFlag"),
		TimeByte:      fr.u8("TimeByte"),
		Point:         fr.u32("Point"),
		StartTime:     readDate(fr.nested("StartTime")),
		EndTime:       readDate(fr.nested("EndTime")),
	}
	copy(c.Reserved[:], fr.raw("Reserved"))

	return c
}

func readDate(fr *fieldReader) Date {
	return Date{
		Year:        fr.u16("Year"),
		Month:       fr.u16("Month"),
		DayOfWeek:   fr.u16("DayOfWeek"),
		Day:         fr.u16("Day"),
		Hour:        fr.u16("Hour"),
		Minute:      fr.u16("Minute"),
		Second:      fr.u16("Second"),
		Millisecond: fr.u16("Millisecond"),
	}
}

// Record converts b to a BallSchema record.
func (b Ball) Record() (*record.Record, error) {
	r := BallSchema.New()
	fw := &fieldWriter{r: r}

	writeCommon(fw.nested("Header"), b.Header)
	fw.set("Unknown", b.Unknown)
	fw.set("Model", b.Model)
	fw.set("Unknown2", b.Unknown2)
	fw.set("Unknown3", b.Unknown3)
	for i, s := range b.Sequences {
		fw.set(sequenceField(i), s)
	}
	for i, s := range b.Effects {
		fw.set(effectField(i), s)
	}

	st := fw.nested("Stats")
	st.set("Power", b.Stats.Power)
	st.set("Control", b.Stats.Control)
	st.set("Accuracy", b.Stats.Accuracy)
	st.set("Spin", b.Stats.Spin)
	st.set("Curve", b.Stats.Curve)
	fw.set("Unknown4", b.Unknown4)

	if err := fw.firstErr(); err != nil {
		return nil, err
	}

	return r, nil
}

func writeCommon(fw *fieldWriter, c Common) {
	fw.set("Active", c.Active)
	fw.set("ID", c.ID)
	fw.set("Name", c.Name)
	fw.set("Level", c.Level)
	fw.set("Icon", c.Icon)
	fw.set("Reserved", append([]byte(nil), c.Reserved[:]...))
	fw.set("Price", c.Price)
	fw.set("DiscountPrice", c.DiscountPrice)
	fw.set("UsedPrice", c.UsedPrice)
	fw.set("ShopFlag", c.ShopFlag)
	fw.set("MoneyFlag", c.MoneyFlag)
	fw.set("TimeFlag", c.TimeFlag)
	fw.set("TimeByte", c.TimeByte)
	fw.set("Point", c.Point)
	writeDate(fw.nested("StartTime"), c.StartTime)
	writeDate(fw.nested("EndTime"), c.EndTime)
}

func writeDate(fw *fieldWriter, d Date) {
	fw.set("Year", d.Year)
	fw.set("Month", d.Month)
	fw.set("DayOfWeek", d.DayOfWeek)
	fw.set("Day", d.Day)
	fw.set("Hour", d.Hour)
	fw.set("Minute", d.Minute)
	fw.set("Second", d.Second)
	fw.set("Millisecond", d.Millisecond)
}

// Balls decodes every record of a Ball.iff file.
func (f *File) Balls() ([]Ball, error) {
	balls := make([]Ball, 0, len(f.Records))
	for i, r := range f.Records {
		b, err := BallFromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		balls = append(balls, b)
	}

	return balls, nil
}
