package api

import (
	"github.com/nikmy/meetslot/internal/calendar"
)

type calendarSource interface {
	calendar.Source
}

type resolverImpl interface {
	resolver
}
