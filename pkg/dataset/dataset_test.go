package dataset

import (
	"strings"
	"testing"

	"github.com/energyadvisor/energyadvisor/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	t.Run("valid data", func(t *testing.T) {
		csv := `appliance,wattage,hours_per_day,quantity
Air Conditioner,1500,8,1
Refrigerator,150,24,1
Television,100,5,2
`
		records, err := ParseCSV(strings.NewReader(csv))
		require.NoError(t, err)
		assert.Equal(t, Sample(), records)
	})

	t.Run("column order is free, extras ignored", func(t *testing.T) {
		csv := `quantity,room,appliance,hours_per_day,wattage
1,kitchen,Microwave,0.5,1200
`
		records, err := ParseCSV(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, types.ApplianceRecord{
			Name: "Microwave", Wattage: 1200, HoursPerDay: 0.5, Quantity: 1,
		}, records[0])
	})

	t.Run("missing columns", func(t *testing.T) {
		_, err := ParseCSV(strings.NewReader("appliance,wattage\nTV,100\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "hours_per_day")
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("non-numeric wattage", func(t *testing.T) {
		csv := "appliance,wattage,hours_per_day,quantity\nTV,lots,5,1\n"
		_, err := ParseCSV(strings.NewReader(csv))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 1")
		assert.Contains(t, err.Error(), "wattage")
	})

	t.Run("row number in error", func(t *testing.T) {
		csv := `appliance,wattage,hours_per_day,quantity
TV,100,5,1
Heater,2000,25,1
`
		_, err := ParseCSV(strings.NewReader(csv))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 2")
		assert.Contains(t, err.Error(), "hours_per_day")
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := ParseCSV(strings.NewReader(""))
		require.Error(t, err)
	})

	t.Run("header only", func(t *testing.T) {
		records, err := ParseCSV(strings.NewReader("appliance,wattage,hours_per_day,quantity\n"))
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestValidate(t *testing.T) {
	valid := types.ApplianceRecord{Name: "Fan", Wattage: 75, HoursPerDay: 10, Quantity: 1}

	t.Run("valid records", func(t *testing.T) {
		assert.NoError(t, Validate([]types.ApplianceRecord{valid}))
		assert.NoError(t, Validate(nil))
	})

	tests := []struct {
		name   string
		mutate func(*types.ApplianceRecord)
		want   string
	}{
		{"empty name", func(r *types.ApplianceRecord) { r.Name = "" }, "name"},
		{"zero wattage", func(r *types.ApplianceRecord) { r.Wattage = 0 }, "wattage"},
		{"negative wattage", func(r *types.ApplianceRecord) { r.Wattage = -5 }, "wattage"},
		{"hours over 24", func(r *types.ApplianceRecord) { r.HoursPerDay = 24.5 }, "hours_per_day"},
		{"negative hours", func(r *types.ApplianceRecord) { r.HoursPerDay = -1 }, "hours_per_day"},
		{"zero quantity", func(r *types.ApplianceRecord) { r.Quantity = 0 }, "quantity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := Validate([]types.ApplianceRecord{r})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "record 1")
		})
	}

	t.Run("boundary hours are legal", func(t *testing.T) {
		r := valid
		r.HoursPerDay = 24
		assert.NoError(t, Validate([]types.ApplianceRecord{r}))
		r.HoursPerDay = 0
		assert.NoError(t, Validate([]types.ApplianceRecord{r}))
	})
}
