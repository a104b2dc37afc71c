package search

import (
	"context"
	"fmt"
	"sort"
	"time"

	"stayhub/internal/domain"
	"stayhub/internal/pkg/daterange"
	"stayhub/internal/repository"
)

const pageSize = 5

type Service struct {
	props PropertyRepository
}

func NewService(props PropertyRepository) *Service {
	return &Service{props: props}
}

// Search returns the page of properties with at least one bookable room for
// the stay window.
func (s *Service) Search(ctx context.Context, p SearchParams) (*SearchResult, error) {
	window := daterange.Nights(p.CheckIn, p.CheckOut)

	props, err := s.props.SearchAvailable(ctx, repository.SearchQuery{
		CityID:        p.CityID,
		GuestCount:    p.GuestCount,
		CheckIn:       daterange.Day(p.CheckIn),
		CheckOut:      daterange.Day(p.CheckOut),
		PropertyName:  p.PropertyName,
		CategoryNames: p.CategoryNames,
	})
	if err != nil {
		return nil, err
	}

	summaries := make([]PropertySummary, 0, len(props))
	categoryCounts := make(map[int64]*CategorySummary)
	for i := range props {
		prop := &props[i]
		rooms := resolveRooms(prop.Rooms, window)
		if len(rooms) == 0 {
			continue
		}
		summaries = append(summaries, summarizeProperty(prop, rooms))
		if cat := prop.Category; cat != nil {
			if tally, ok := categoryCounts[cat.ID]; ok {
				tally.PropertiesCount++
			} else {
				categoryCounts[cat.ID] = &CategorySummary{ID: cat.ID, Name: cat.Name, PropertiesCount: 1}
			}
		}
	}

	sortSummaries(summaries, p.SortBy, p.SortOrder)

	if len(summaries) == 0 {
		return &SearchResult{
			Data:       []PropertySummary{},
			Categories: []CategorySummary{},
			Pagination: Pagination{CurrentPage: p.Page},
		}, nil
	}

	total := len(summaries)
	totalPages := (total + pageSize - 1) / pageSize
	if p.Page > totalPages {
		return nil, ErrPageOutOfRange
	}

	offset := (p.Page - 1) * pageSize
	end := offset + pageSize
	if end > total {
		end = total
	}

	return &SearchResult{
		Data:       summaries[offset:end],
		Categories: summarizeCategories(categoryCounts),
		Pagination: Pagination{
			CurrentPage:     p.Page,
			TotalPages:      totalPages,
			TotalProperties: total,
			HasNextPage:     p.Page < totalPages,
			HasPrevPage:     p.Page > 1,
		},
	}, nil
}

// Detail returns one property with its bookable rooms for the stay window.
// A found property with no bookable rooms yields an empty AvailableRooms
// slice, which the handler reports as a 200, not a 404.
func (s *Service) Detail(ctx context.Context, p DetailParams) (*PropertyDetail, error) {
	prop, err := s.props.GetDetail(ctx, p.PropertyID, repository.SearchQuery{
		GuestCount: p.GuestCount,
		CheckIn:    daterange.Day(p.CheckIn),
		CheckOut:   daterange.Day(p.CheckOut),
	})
	if err != nil {
		return nil, err
	}
	if prop == nil {
		return nil, ErrPropertyNotFound
	}

	window := daterange.Nights(p.CheckIn, p.CheckOut)
	rooms := resolveRooms(prop.Rooms, window)

	detail := &PropertyDetail{
		PropertyID:     prop.ID,
		Name:           prop.Name,
		Description:    prop.Description,
		Location:       prop.Location,
		Category:       prop.CategoryName(),
		Pictures:       propertyPictures(prop.Pictures),
		AvailableRooms: make([]RoomDetail, 0, len(rooms)),
	}
	if prop.City != nil {
		detail.City = &CityInfo{Name: prop.City.Name, Type: prop.City.Type}
	}
	for _, r := range rooms {
		detail.AvailableRooms = append(detail.AvailableRooms, RoomDetail{
			ID:                r.Room.ID,
			Name:              r.Room.Name,
			Description:       r.Room.Description,
			Price:             r.Room.Price,
			MaxGuests:         r.Room.MaxGuests,
			Quantity:          r.Room.Quantity,
			AvailableQuantity: r.AvailableQuantity,
			FinalPrice:        r.FinalPrice,
			Pictures:          roomPictures(r.Room.Pictures),
		})
	}
	return detail, nil
}

var dayNames = [...]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Calendar projects one availability/price record per day of the month.
// Unavailable days stay in the projection; only the listing surfaces omit
// unavailable rooms.
func (s *Service) Calendar(ctx context.Context, propertyID int64, year, monthNum int) (*CalendarData, error) {
	month := daterange.Month(year, time.Month(monthNum))

	prop, err := s.props.GetForCalendar(ctx, propertyID, month)
	if err != nil {
		return nil, err
	}
	if prop == nil {
		return nil, ErrPropertyNotFound
	}

	days := month.Days()
	calendar := make([]CalendarDay, 0, len(days))
	for _, day := range days {
		rooms := resolveRooms(prop.Rooms, daterange.SingleDay(day))

		var minPrice *int64
		for _, r := range rooms {
			if minPrice == nil || r.FinalPrice < *minPrice {
				price := r.FinalPrice
				minPrice = &price
			}
		}

		calendar = append(calendar, CalendarDay{
			Date:                fmt.Sprintf("%04d-%02d-%02d", day.Year(), day.Month(), day.Day()),
			DayOfWeek:           dayNames[int(day.Weekday())],
			IsAvailable:         len(rooms) > 0,
			MinPrice:            minPrice,
			AvailableRoomsCount: len(rooms),
		})
	}

	prevYear, prevMonth := year, monthNum-1
	if prevMonth == 0 {
		prevYear, prevMonth = year-1, 12
	}
	nextYear, nextMonth := year, monthNum+1
	if nextMonth == 13 {
		nextYear, nextMonth = year+1, 1
	}

	return &CalendarData{
		PropertyID:   prop.ID,
		PropertyName: prop.Name,
		Year:         year,
		Month:        monthNum,
		Calendar:     calendar,
		Pagination: CalendarPagination{
			CurrentMonth: monthNum,
			CurrentYear:  year,
			HasPrevMonth: true,
			HasNextMonth: true,
			PrevMonthURL: fmt.Sprintf("/properties/%d/calendar?year=%d&month=%d", propertyID, prevYear, prevMonth),
			NextMonthURL: fmt.Sprintf("/properties/%d/calendar?year=%d&month=%d", propertyID, nextYear, nextMonth),
		},
	}, nil
}

func summarizeProperty(prop *domain.Property, rooms []resolvedRoom) PropertySummary {
	minPrice := rooms[0].FinalPrice
	for _, r := range rooms[1:] {
		if r.FinalPrice < minPrice {
			minPrice = r.FinalPrice
		}
	}
	return PropertySummary{
		PropertyID:     prop.ID,
		Name:           prop.Name,
		Location:       prop.Location,
		Category:       prop.CategoryName(),
		CityID:         prop.CityID,
		MainPicture:    prop.MainPicturePath(),
		Price:          minPrice,
		AvailableRooms: len(rooms),
	}
}

func sortSummaries(summaries []PropertySummary, sortBy, sortOrder string) {
	if sortBy == "" {
		return
	}
	desc := sortOrder == "desc"
	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		if desc {
			a, b = b, a
		}
		if sortBy == "price" {
			return a.Price < b.Price
		}
		return a.Name < b.Name
	})
}

func summarizeCategories(counts map[int64]*CategorySummary) []CategorySummary {
	out := make([]CategorySummary, 0, len(counts))
	for _, tally := range counts {
		out = append(out, *tally)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func propertyPictures(pics []domain.PropertyPicture) []PictureInfo {
	out := make([]PictureInfo, 0, len(pics))
	for _, p := range pics {
		out = append(out, PictureInfo{ID: p.ID, FilePath: p.FilePath, IsMain: p.IsMain})
	}
	return out
}

func roomPictures(pics []domain.RoomPicture) []PictureInfo {
	out := make([]PictureInfo, 0, len(pics))
	for _, p := range pics {
		out = append(out, PictureInfo{ID: p.ID, FilePath: p.FilePath})
	}
	return out
}
