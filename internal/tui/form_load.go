package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/logilink/logilink-client/models"
)

var formLoadLabels = []string{
	"Origin", "Destination", "Material", "Weight (t)", "Truck type", "Price (₹)", "Contact phone",
}

type formLoadModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	editing    bool
	original   models.LoadPost
}

func newFormLoadModel(post *models.LoadPost) formLoadModel {
	inputs := []textinput.Model{
		newInput("origin city", 40),
		newInput("destination city", 40),
		newInput("material", 40),
		newInput("weight in tonnes", 10),
		newInput("open / container / trailer...", 30),
		newInput("offered price", 12),
		newInput("contact phone", 10),
	}

	m := formLoadModel{inputs: inputs}
	if post != nil {
		m.editing = true
		m.original = *post
		inputs[0].SetValue(post.Origin)
		inputs[1].SetValue(post.Destination)
		inputs[2].SetValue(post.Material)
		inputs[3].SetValue(strconv.FormatFloat(post.WeightTonnes, 'f', -1, 64))
		inputs[4].SetValue(post.TruckType)
		inputs[5].SetValue(strconv.FormatFloat(post.OfferedPrice, 'f', -1, 64))
		inputs[6].SetValue(post.ContactPhone)
	}
	inputs[0].Focus()
	return m
}

// toPost builds the listing payload; identity fields of an edited listing
// are carried over from the original.
func (m formLoadModel) toPost() (models.LoadPost, error) {
	weight, err := parseFloatField(m.inputs[3].Value(), "Weight")
	if err != nil {
		return models.LoadPost{}, err
	}
	price, err := parseFloatField(m.inputs[5].Value(), "Price")
	if err != nil {
		return models.LoadPost{}, err
	}

	post := m.original
	post.Origin = strings.TrimSpace(m.inputs[0].Value())
	post.Destination = strings.TrimSpace(m.inputs[1].Value())
	post.Material = strings.TrimSpace(m.inputs[2].Value())
	post.WeightTonnes = weight
	post.TruckType = strings.TrimSpace(m.inputs[4].Value())
	post.OfferedPrice = price
	post.ContactPhone = strings.TrimSpace(m.inputs[6].Value())
	return post, nil
}

func (m appModel) updateFormLoad(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = m.returnScreen
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formLoad.focus = cycleFocus(m.formLoad.inputs, m.formLoad.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formLoad.focus = cycleFocus(m.formLoad.inputs, m.formLoad.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.formLoad.submitting {
				return m, nil
			}
			post, err := m.formLoad.toPost()
			if err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			if post.Origin == "" || post.Destination == "" {
				m.showErrorf("Origin and destination are required")
				return m, nil
			}
			m.formLoad.submitting = true
			return m, m.cmdSaveLoad(post, m.formLoad.editing)
		}
	}

	var cmd tea.Cmd
	m.formLoad.inputs[m.formLoad.focus], cmd = m.formLoad.inputs[m.formLoad.focus].Update(msg)
	return m, cmd
}

func (m formLoadModel) view(st styles) string {
	title := "Post a load"
	if m.editing {
		title = "Edit load"
	}

	out := st.title.Render(title) + "\n"
	out += uiDivider + "\n\n"
	out += renderForm(formLoadLabels, m.inputs)

	if m.submitting {
		out += "\nSaving...\n"
	}

	out += "\n" + st.help.Render("enter save  tab next field  esc cancel")
	return out
}
