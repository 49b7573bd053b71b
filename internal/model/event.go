package model

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Event 活動模型；Date 只保留日期，Time 只保留時:分
type Event struct {
	ID          int       `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Date        time.Time `json:"-" db:"date"`
	Time        time.Time `json:"-" db:"time"`
	Location    string    `json:"location" db:"location"`
	Address     string    `json:"address" db:"address"`
	MapLink     *string   `json:"map_link,omitempty" db:"map_link"`
	Image       *string   `json:"image,omitempty" db:"image"`
	PDF         *string   `json:"pdf,omitempty" db:"pdf"`
	QRCode      *string   `json:"qr_code,omitempty" db:"qr_code"`
	OrganizerID int       `json:"organizer_id" db:"organizer_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// StartsAt 合併日期與時間成單一時間點 (UTC)
func (e *Event) StartsAt() time.Time {
	return time.Date(
		e.Date.Year(), e.Date.Month(), e.Date.Day(),
		e.Time.Hour(), e.Time.Minute(), 0, 0,
		time.UTC,
	)
}

func (e *Event) DateString() string {
	return e.Date.Format(DateLayout)
}

func (e *Event) TimeString() string {
	return e.Time.Format(ClockLayout)
}

func (e *Event) IsOrganizedBy(userID int) bool {
	return e.OrganizerID == userID
}

func (e *Event) String() string {
	return e.Title
}

type UpdateEventParams struct {
	Title       *string
	Description *string
	Date        *time.Time
	Time        *time.Time
	Location    *string
	Address     *string
	MapLink     *string
}

func (p UpdateEventParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Date == nil && p.Time == nil &&
		p.Location == nil && p.Address == nil && p.MapLink == nil
}

// DateFilter 首頁日期篩選
type DateFilter string

const (
	DateFilterAll      DateFilter = ""
	DateFilterUpcoming DateFilter = "upcoming"
	DateFilterPast     DateFilter = "past"
)

func (f DateFilter) IsValid() bool {
	switch f {
	case DateFilterAll, DateFilterUpcoming, DateFilterPast:
		return true
	}
	return false
}

// EventFilter 列表查詢條件；Today 由呼叫端給定以便測試
type EventFilter struct {
	Query string
	When  DateFilter
	Today time.Time
}

// EventResponse 活動響應
type EventResponse struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Location     string  `json:"location"`
	Address      string  `json:"address"`
	MapLink      *string `json:"map_link,omitempty"`
	QRCodeURL    *string `json:"qr_code_url,omitempty"`
	OrganizerID  int     `json:"organizer_id"`
	IsRegistered *bool   `json:"is_registered,omitempty"`
}

func NewEventResponse(e *Event) EventResponse {
	resp := EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.DateString(),
		Time:        e.TimeString(),
		Location:    e.Location,
		Address:     e.Address,
		MapLink:     e.MapLink,
		OrganizerID: e.OrganizerID,
	}
	if e.QRCode != nil {
		u := fmt.Sprintf("/api/v1/events/%d/qr-code", e.ID)
		resp.QRCodeURL = &u
	}
	return resp
}

func NewEventResponses(events []*Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, NewEventResponse(e))
	}
	return out
}
