package response

import (
	"time"

	"doglivebot/internal/usecase/commands"
	"doglivebot/internal/usecase/queries"
)

type WeekResponse struct {
	ScheduleID    int64     `json:"scheduleId"`
	WeekStart     string    `json:"weekStart"`
	WeekEnd       time.Time `json:"weekEnd"`
	TotalSlots    int       `json:"totalSlots"`
	ReservedSlots int       `json:"reservedSlots"`
	FreeSlots     int       `json:"freeSlots"`
	CreatedAt     time.Time `json:"createdAt"`
}

type RolloverResponse struct {
	Created    bool      `json:"created"`
	ScheduleID int64     `json:"scheduleId"`
	WeekStart  string    `json:"weekStart"`
	WeekEnd    time.Time `json:"weekEnd"`
	SlotCount  int64     `json:"slotCount"`
}

const dateLayout = "2006-01-02"

func FromWeekView(v *queries.WeekView) *WeekResponse {
	return &WeekResponse{
		ScheduleID:    v.ScheduleID,
		WeekStart:     v.WeekStart.Format(dateLayout),
		WeekEnd:       v.WeekEnd,
		TotalSlots:    v.TotalSlots,
		ReservedSlots: v.ReservedSlots,
		FreeSlots:     v.TotalSlots - v.ReservedSlots,
		CreatedAt:     v.CreatedAt,
	}
}

func FromRolloverResult(r *commands.RolloverResult) *RolloverResponse {
	return &RolloverResponse{
		Created:    r.Created,
		ScheduleID: r.ScheduleID,
		WeekStart:  r.WeekStart.Format(dateLayout),
		WeekEnd:    r.WeekEnd,
		SlotCount:  r.SlotCount,
	}
}
