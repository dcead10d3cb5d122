package domain

import (
	"math"
	"strings"
	"time"
)

type StationType string

const (
	StationPlay4    StationType = "Play 4"
	StationPlay5    StationType = "Play 5"
	StationPingPong StationType = "Ping Pong"
)

type PaymentStatus string

const (
	PaymentInProgress PaymentStatus = "En Proceso"
	PaymentPaid       PaymentStatus = "Pagado"
	PaymentPending    PaymentStatus = "Pendiente"
)

func (s PaymentStatus) IsValid() bool {
	return s == PaymentInProgress || s == PaymentPaid || s == PaymentPending
}

// StationTypeFor classifies a station label. Labels carry a free-form suffix
// ("Play 5 #2"), so classification is by prefix.
func StationTypeFor(station string) StationType {
	switch {
	case strings.Contains(station, "Play 5"):
		return StationPlay5
	case strings.Contains(station, "Play 4"):
		return StationPlay4
	case station == "Ping Pong":
		return StationPingPong
	}
	return ""
}

// Hourly rates and the per-controller surcharge, in cents.
var stationRates = map[StationType]Amount{
	StationPlay5:    NewAmountFromValue(1000),
	StationPlay4:    NewAmountFromValue(800),
	StationPingPong: NewAmountFromValue(800),
}

var controllerRate = NewAmountFromValue(200)

// SessionFees is the server-side fee breakdown for a play session. Totals are
// always recomputed here, never trusted from the client.
type SessionFees struct {
	Subtotal      Amount
	ControllerFee Amount
	Total         Amount
}

func CalculateSessionFees(station string, minutesPaid int, extraControllers int) SessionFees {
	rate := stationRates[StationTypeFor(station)]
	// Partial hours round to the nearest whole currency unit.
	subtotal := NewAmountFromValue(int64(math.Round(rate.ToFloat() * float64(minutesPaid) / 60)))
	controllerFee := controllerRate.Multiply(extraControllers)
	return SessionFees{
		Subtotal:      subtotal,
		ControllerFee: controllerFee,
		Total:         subtotal.Add(controllerFee),
	}
}

// PlaySession is one billed slot on a game station.
type PlaySession struct {
	ID               ID
	Date             time.Time
	Customer         string
	AttendedBy       string
	MinutesPaid      int
	MinutesPending   int
	StartTime        string
	EndTime          string
	Station          string
	StationType      StationType
	GamesPlayed      []string
	ExtraControllers int
	Subtotal         Amount
	ControllerFee    Amount
	Total            Amount
	PaymentStatus    PaymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Reprice recomputes station type and all fee fields from the mutable inputs.
func (s *PlaySession) Reprice() {
	s.StationType = StationTypeFor(s.Station)
	fees := CalculateSessionFees(s.Station, s.MinutesPaid, s.ExtraControllers)
	s.Subtotal = fees.Subtotal
	s.ControllerFee = fees.ControllerFee
	s.Total = fees.Total
}
