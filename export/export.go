package export

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"sort"
	"time"

	"roamio/db"
	"roamio/models"
	"roamio/schedule"
	"roamio/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// GET /api/itineraries/:id/qr
// Returns a PNG share code pointing at the itinerary.
func ShareQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itineraryID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var itin models.Itinerary
	filter := bson.M{"itineraryid": itineraryID, "deleted": bson.M{"$ne": true}}
	if err := db.ItineraryCollection.FindOne(ctx, filter).Decode(&itin); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	base := os.Getenv("SHARE_BASE_URL")
	if base == "" {
		base = "https://app.roamio.example"
	}
	payload := fmt.Sprintf("%s/itineraries/%s", base, itin.ItineraryID)

	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// GET /api/itineraries/:id/pdf
// Produces a printable day-by-day schedule for offline use, with soft
// conflict annotations inline so travelers see tight connections on
// paper too.
func SchedulePDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itineraryID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var itin models.Itinerary
	filter := bson.M{"itineraryid": itineraryID, "deleted": bson.M{"$ne": true}}
	if err := db.ItineraryCollection.FindOne(ctx, filter).Decode(&itin); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	items, err := utils.FindAndDecode[models.ScheduledItem](ctx, db.ItemsCollection, bson.M{"itineraryid": itineraryID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching items")
		return
	}

	buf, err := buildSchedulePDF(itin, items)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=itinerary-"+itin.ItineraryID+".pdf")
	w.Write(buf.Bytes())
}

func buildSchedulePDF(itin models.Itinerary, items []models.ScheduledItem) (*bytes.Buffer, error) {
	byDay := make(map[int][]models.ScheduledItem)
	for _, it := range items {
		byDay[it.DayNumber] = append(byDay[it.DayNumber], it)
	}
	days := make([]int, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Ints(days)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, itin.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s to %s", itin.StartDate, itin.EndDate), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	for _, d := range days {
		group := byDay[d]
		sort.SliceStable(group, func(i, j int) bool { return group[i].StartTime < group[j].StartTime })

		label := fmt.Sprintf("Day %d", d)
		if date, err := schedule.DayDate(itin, d); err == nil {
			label = fmt.Sprintf("Day %d - %s", d, date.Format("Mon 02 Jan"))
		}
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, label, "B", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "", 11)
		for _, it := range group {
			line := fmt.Sprintf("%s - %s  %s", it.StartTime, it.EndTime, it.ExperienceName)
			if it.DestinationName != "" {
				line += " (" + it.DestinationName + ")"
			}
			if warn := schedule.WarningFor(it, items); warn != nil {
				line += "  [" + warn.Message + "]"
			}
			pdf.CellFormat(0, 8, line, "", 1, "L", false, 0, "")
			if it.CustomNote != "" {
				pdf.SetFont("Arial", "I", 10)
				pdf.CellFormat(0, 6, "    "+it.CustomNote, "", 1, "L", false, 0, "")
				pdf.SetFont("Arial", "", 11)
			}
		}
		pdf.Ln(4)
	}

	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 10, fmt.Sprintf("Exported %s", time.Now().Format("02 Jan 2006 15:04")), "T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
