package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/logilink/logilink-client/models"
)

// vehicleClasses in cycling order for the toll calculator.
var vehicleClasses = []string{
	models.VehicleClassLCV,
	models.VehicleClassTwoAxle,
	models.VehicleClassThreeAxle,
	models.VehicleClassHeavy,
}

// calcTollModel is the toll estimator. Both calculators run locally: the
// estimate appears inline as soon as the inputs parse.
type calcTollModel struct {
	inputs   []textinput.Model
	focus    int
	classIdx int
	estimate *models.TollEstimate
}

var calcTollLabels = []string{"Distance (km)", "Toll plazas"}

func newCalcTollModel() calcTollModel {
	inputs := []textinput.Model{
		newInput("route distance in km", 8),
		newInput("number of plazas crossed", 4),
	}
	inputs[0].Focus()
	return calcTollModel{inputs: inputs, classIdx: 1}
}

func (m appModel) updateCalcToll(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.calcToll.focus = cycleFocus(m.calcToll.inputs, m.calcToll.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.calcToll.focus = cycleFocus(m.calcToll.inputs, m.calcToll.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.left):
			m.calcToll.classIdx = (m.calcToll.classIdx - 1 + len(vehicleClasses)) % len(vehicleClasses)
			return m, nil
		case key.Matches(keyMsg, keys.right):
			m.calcToll.classIdx = (m.calcToll.classIdx + 1) % len(vehicleClasses)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			distance, err := parseFloatField(m.calcToll.inputs[0].Value(), "Distance")
			if err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			plazas, err := parseIntField(m.calcToll.inputs[1].Value(), "Toll plazas")
			if err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}

			estimate, err := m.services.CalcService.Toll(models.TollRequest{
				DistanceKm:   distance,
				VehicleClass: vehicleClasses[m.calcToll.classIdx],
				PlazaCount:   int(plazas),
			})
			if err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.calcToll.estimate = &estimate
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.calcToll.inputs[m.calcToll.focus], cmd = m.calcToll.inputs[m.calcToll.focus].Update(msg)
	return m, cmd
}

func (m calcTollModel) view(st styles) string {
	out := st.title.Render("Toll calculator") + "\n"
	out += uiDivider + "\n\n"
	out += renderForm(calcTollLabels, m.inputs)
	out += fmt.Sprintf("%-13s │ ◄ %s ►\n", "Vehicle class", vehicleClasses[m.classIdx])

	if m.estimate != nil {
		out += "\n"
		out += "Distance charge │ " + fmtMoney(m.estimate.DistanceCharge) + "\n"
		out += "Plaza charge    │ " + fmtMoney(m.estimate.PlazaCharge) + "\n"
		out += st.status.Render("Total           │ "+fmtMoney(m.estimate.Total)) + "\n"
	}

	out += "\n" + st.help.Render("enter estimate  ←/→ class  tab next field  esc menu")
	return out
}

// ── mileage ─────────────────────────────────────────────────────────────────

type calcMileageModel struct {
	inputs   []textinput.Model
	focus    int
	estimate *models.MileageEstimate
}

var calcMileageLabels = []string{"Distance (km)", "Fuel used (l)", "Fuel price (₹/l)"}

func newCalcMileageModel() calcMileageModel {
	inputs := []textinput.Model{
		newInput("distance covered in km", 8),
		newInput("litres of fuel consumed", 8),
		newInput("price per litre", 8),
	}
	inputs[0].Focus()
	return calcMileageModel{inputs: inputs}
}

func (m appModel) updateCalcMileage(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.calcMileage.focus = cycleFocus(m.calcMileage.inputs, m.calcMileage.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.calcMileage.focus = cycleFocus(m.calcMileage.inputs, m.calcMileage.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			values := make([]float64, 3)
			for i, label := range calcMileageLabels {
				v, err := parseFloatField(m.calcMileage.inputs[i].Value(), strings.TrimSpace(strings.Split(label, " (")[0]))
				if err != nil {
					m.showErrorf(err.Error())
					return m, nil
				}
				values[i] = v
			}

			estimate, err := m.services.CalcService.Mileage(models.MileageRequest{
				DistanceKm:        values[0],
				FuelLitres:        values[1],
				FuelPricePerLitre: values[2],
			})
			if err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.calcMileage.estimate = &estimate
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.calcMileage.inputs[m.calcMileage.focus], cmd = m.calcMileage.inputs[m.calcMileage.focus].Update(msg)
	return m, cmd
}

func (m calcMileageModel) view(st styles) string {
	out := st.title.Render("Mileage calculator") + "\n"
	out += uiDivider + "\n\n"
	out += renderForm(calcMileageLabels, m.inputs)

	if m.estimate != nil {
		out += "\n"
		out += fmt.Sprintf("Mileage     │ %.2f km/l\n", m.estimate.KmPerLitre)
		out += "Fuel cost   │ " + fmtMoney(m.estimate.FuelCost) + "\n"
		out += fmt.Sprintf("Cost per km │ %s\n", fmtMoney(m.estimate.CostPerKm))
	}

	out += "\n" + st.help.Render("enter estimate  tab next field  esc menu")
	return out
}
