package aprsobj

/*------------------------------------------------------------------
 *
 * Purpose:	Decide when each of our objects and items goes out
 *		again.
 *
 * Description:	A new or changed object starts with a short interval
 *		which doubles after every transmission until it reaches
 *		the configured maximum.  Each interval is shortened by a
 *		random 0 - 20% so a batch of objects created together
 *		drifts apart instead of always going out in a burst.
 *
 *		The next time is measured from the previous scheduled
 *		time, not from when the sweep happened to notice.
 *
 *		A killed object is sent a limited number of extra times
 *		so others hear about it, then it goes quiet.
 *
 *------------------------------------------------------------------*/

import (
	"math/rand"
	"time"
)

const (
	DefaultObjectRate          = 30 * time.Minute
	DefaultObjectCheckRate     = 20 * time.Second
	DefaultMaxKilledRetransmit = 20

	maxJitterFraction = 0.2
	sweepThrottle     = 0.8
)

type Transmitter interface {
	Transmit(o *Object, info string) error
}

// TransmitterFunc lets an ordinary function be a Transmitter.
type TransmitterFunc func(o *Object, info string) error

func (f TransmitterFunc) Transmit(o *Object, info string) error {
	return f(o, info)
}

type Scheduler struct {
	Store       *Store
	Transmitter Transmitter
	Log         *ObjectLog // nil for no log
	Metrics     *Metrics   // nil for no metrics
	Rand        *rand.Rand

	MyCall              string
	ObjectRate          time.Duration // longest interval
	CheckRate           time.Duration // first interval and sweep period
	MaxKilledRetransmit int

	// Compression, timestamp format, dead reckoning.  Now is filled in
	// for each packet.
	TxOptions TxOptions

	lastSweep time.Time
}

func NewScheduler(cfg *Config, store *Store, tx Transmitter) *Scheduler {
	return &Scheduler{
		Store:               store,
		Transmitter:         tx,
		Rand:                rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec
		MyCall:              cfg.Callsign,
		ObjectRate:          cfg.ObjectRate,
		CheckRate:           cfg.ObjectCheckRate,
		MaxKilledRetransmit: cfg.MaxKilledRetransmit,
		TxOptions: TxOptions{
			Compressed:      cfg.Compressed,
			TimestampFormat: cfg.TimestampFormat,
			DeadReckoner:    GreatCircleDeadReckoner{MaxAge: DefaultDeadReckoningTimeout},
		},
	}
}

func (s *Scheduler) objectRate() time.Duration {
	return IfThenElse(s.ObjectRate > 0, s.ObjectRate, DefaultObjectRate)
}

func (s *Scheduler) checkRate() time.Duration {
	return IfThenElse(s.CheckRate > 0, s.CheckRate, DefaultObjectCheckRate)
}

func (s *Scheduler) maxKilled() int {
	return IfThenElse(s.MaxKilledRetransmit > 0, s.MaxKilledRetransmit, DefaultMaxKilledRetransmit)
}

func (s *Scheduler) txOptions(now time.Time) TxOptions {
	var opts = s.TxOptions
	opts.Now = now
	return opts
}

func (s *Scheduler) transmit(o *Object, line string) bool {
	if s.Transmitter == nil {
		return false
	}

	if err := s.Transmitter.Transmit(o, line); err != nil {
		dw_printf(DW_COLOR_ERROR, "Couldn't transmit %s: %s\n", o.CallSign, err)
		return false
	}

	s.Metrics.transmitted(o, !o.IsActive())
	dw_printf(DW_COLOR_XMIT, "%s\n", line)

	return true
}

func (s *Scheduler) logLine(line string, disable bool, name string) {
	if s.Log == nil {
		return
	}

	// Not being able to log doesn't stop the transmission.
	if err := s.Log.Append(line, disable, name); err != nil {
		dw_printf(DW_COLOR_ERROR, "Object log: %s\n", err)
		s.Metrics.logFailed()
	}
}

/*------------------------------------------------------------------
 *
 * Function:	Adopt
 *
 * Purpose:	Take ownership of an object without sending it.
 *
 * Description:	Used when reloading the log.  The first transmission
 *		is one check interval away.
 *
 *------------------------------------------------------------------*/

func (s *Scheduler) Adopt(o *Object, now time.Time) {
	var c = o.Clone()
	if c.Origin == "" {
		c.Origin = s.MyCall
	}
	c.LastTransmitTime = now
	c.TransmitTimeIncrement = s.checkRate()
	if c.IsActive() {
		c.ObjectRetransmit = -1
	}

	s.Store.Put(c)
	s.Metrics.setOwned(s.Store.Len())
}

/*------------------------------------------------------------------
 *
 * Function:	Set
 *
 * Purpose:	Create or change one of our objects and send it now.
 *
 * Returns:	The packet, or false if the object can't be sent
 *		(bad name).  Nothing is stored in that case.
 *
 *------------------------------------------------------------------*/

func (s *Scheduler) Set(o *Object, now time.Time) (string, bool) {
	var line, ok = CreateObjectItemTxString(o, s.txOptions(now))
	if !ok {
		return "", false
	}

	var c = o.Clone()
	c.Origin = s.MyCall
	c.LastTransmitTime = now
	c.TransmitTimeIncrement = s.checkRate()
	c.ObjectRetransmit = -1
	if c.FixTime.IsZero() {
		c.FixTime = now
	}

	s.Store.Put(c)
	s.Metrics.setOwned(s.Store.Len())

	s.logLine(line, false, c.CallSign)
	s.transmit(c, line)

	return line, true
}

/*------------------------------------------------------------------
 *
 * Function:	Kill
 *
 * Purpose:	Kill one of our objects.
 *
 * Description:	The kill is sent at once and then repeated on the
 *		usual schedule until the countdown runs out.  The log
 *		entries are commented out so it doesn't come back
 *		after a restart.
 *
 *------------------------------------------------------------------*/

func (s *Scheduler) Kill(name string, now time.Time) (string, bool) {
	var line string
	var built bool

	var found = s.Store.update(name, func(o *Object) {
		o.Kill()
		o.ObjectRetransmit = s.maxKilled()
		o.LastTransmitTime = now
		o.TransmitTimeIncrement = s.checkRate()

		line, built = CreateObjectItemTxString(o, s.txOptions(now))
	})

	if !found || !built {
		return "", false
	}

	s.logLine(line, true, name)

	if o, ok := s.Store.Get(name); ok && s.transmit(o, line) {
		s.Store.update(name, func(o *Object) { o.ObjectRetransmit-- })
	}

	return line, true
}

/*------------------------------------------------------------------
 *
 * Function:	Disown
 *
 * Purpose:	Stop looking after an object because someone else
 *		has taken it over.
 *
 * Description:	It's removed from our store and commented out of
 *		the log.  The returned copy carries the new owner.
 *
 *------------------------------------------------------------------*/

func (s *Scheduler) Disown(name, newOwner string) (*Object, bool) {
	var o, ok = s.Store.Remove(name)
	if !ok {
		return nil, false
	}
	o.Origin = newOwner

	s.Metrics.setOwned(s.Store.Len())

	if s.Log != nil {
		if err := s.Log.Disown(name); err != nil {
			dw_printf(DW_COLOR_ERROR, "Object log: %s\n", err)
			s.Metrics.logFailed()
		}
	}

	dw_printf(DW_COLOR_INFO, "%s now belongs to %s.\n", name, newOwner)

	return o, true
}

// nextInterval works out the new increment and how far to move the
// schedule: inc doubled, capped at max, less up to 20%.
func nextInterval(inc, maxInc time.Duration, rng *rand.Rand) (time.Duration, time.Duration) {
	if inc <= 0 {
		inc = 1 * time.Second
	}
	if inc > maxInc {
		inc = maxInc
	}

	inc *= 2
	if inc > maxInc {
		inc = maxInc
	}

	var jitter = time.Duration(rng.Float64() * maxJitterFraction * float64(inc))

	return inc, inc - jitter
}

/*------------------------------------------------------------------
 *
 * Function:	CheckAndTransmit
 *
 * Purpose:	Send whatever is due.  Call this periodically.
 *
 * Inputs:	now	- Current time.
 *
 * Returns:	Number of packets transmitted.
 *
 * Description:	Calls closer together than 80% of the check rate do
 *		nothing.
 *
 *------------------------------------------------------------------*/

func (s *Scheduler) CheckAndTransmit(now time.Time) int {
	var throttle = time.Duration(sweepThrottle * float64(s.checkRate()))
	if !s.lastSweep.IsZero() && now.Sub(s.lastSweep) < throttle {
		return 0
	}
	s.lastSweep = now

	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(now.UnixNano())) //nolint:gosec
	}

	var start = time.Now()
	var sent = 0

	var owned = s.Store.sweep(func(o *Object) {
		if now.Before(o.LastTransmitTime.Add(o.TransmitTimeIncrement)) {
			return
		}

		var killed = !o.IsActive()
		if killed {
			if o.ObjectRetransmit < 0 {
				o.ObjectRetransmit = s.maxKilled()
			}
			if o.ObjectRetransmit == 0 {
				return
			}
		}

		var inc, advance = nextInterval(o.TransmitTimeIncrement, s.objectRate(), s.Rand)
		o.TransmitTimeIncrement = inc
		o.LastTransmitTime = o.LastTransmitTime.Add(advance)

		var line, ok = CreateObjectItemTxString(o, s.txOptions(now))
		if !ok {
			return
		}

		if !s.transmit(o, line) {
			return
		}
		sent++

		if killed {
			o.ObjectRetransmit--
			if o.ObjectRetransmit == 0 {
				dw_printf(DW_COLOR_INFO, "Finished sending kill for %s.\n", o.CallSign)
				s.Metrics.exhausted()
			}
		}
	})

	s.Metrics.setOwned(owned)
	s.Metrics.observeSweep(time.Since(start))

	return sent
}
