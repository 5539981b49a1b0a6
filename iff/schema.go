package iff

import "github.com/pangya-tools/panglib/record"

// String field widths used throughout the Season 8 layouts.
const (
	NameWidth  = 40
	AssetWidth = 40
)

// BallSequenceCount and BallEffectCount are the number of animation
// sequence and effect slots in a Ball record.
const (
	BallSequenceCount = 7
	BallEffectCount   = 7
)

// DateSchema is a Windows SYSTEMTIME: eight uint16 fields.
var DateSchema = record.MustSchema("Date", []record.Field{
	record.Uint16("Year"),
	record.Uint16("Month"),
	record.Uint16("DayOfWeek"),
	record.Uint16("Day"),
	record.Uint16("Hour"),
	record.Uint16("Minute"),
	record.Uint16("Second"),
	record.Uint16("Millisecond"),
}, record.WithNaturalAlignment())

// CommonSchema is the header shared by every item category.
var CommonSchema = record.MustSchema("Common", []record.Field{
	record.Uint32("Active"),
	record.Uint32("ID"),
	record.String("Name", NameWidth),
	record.Uint8("Level"),
	record.String("Icon", AssetWidth),
	record.Bytes("Reserved", 3),
	record.Uint32("Price"),
	record.Uint32("DiscountPrice"),
	record.Uint32("UsedPrice"),
	record.Uint8("ShopFlag"),
	record.Uint8("MoneyFlag"),
	record.Uint8("TimeFlag"),
	record.Uint8("TimeByte"),
	record.Uint32("Point"),
	record.Struct("StartTime", DateSchema),
	record.Struct("EndTime", DateSchema),
}, record.WithNaturalAlignment())

// StatsSchema holds the five stat modifiers of an item.
var StatsSchema = record.MustSchema("Stats", []record.Field{
	record.Uint16("Power"),
	record.Uint16("Control"),
	record.Uint16("Accuracy"),
	record.Uint16("Spin"),
	record.Uint16("Curve"),
}, record.WithNaturalAlignment())

// BallSchema is the layout of one entry of Ball.iff.
var BallSchema = record.MustSchema("Ball", ballFields(), record.WithNaturalAlignment())

func ballFields() []record.Field {
	fields := []record.Field{
		record.Struct("Header", CommonSchema),
		record.Uint32("Unknown"),
		record.String("Model", AssetWidth),
		record.Uint32("Unknown2"),
		record.Uint32("Unknown3"),
	}
	for i := range BallSequenceCount {
		fields = append(fields, record.String(sequenceField(i), AssetWidth))
	}
	for i := range BallEffectCount {
		fields = append(fields, record.String(effectField(i), AssetWidth))
	}

	return append(fields,
		record.Struct("Stats", StatsSchema),
		record.Uint16("Unknown4"),
	)
}

func sequenceField(i int) string {
	return "BallSequence" + string(rune('1'+i))
}

func effectField(i int) string {
	return "BallFx" + string(rune('1'+i))
}
