package util

import (
	"math"
	"strings"

	"resume-relevance/internal/storage"

	"github.com/tidwall/gjson"
)

// MapHHResume converts a raw hh.ru resume JSON payload into the internal
// resume field shape. hh.ru is loose about where it puts things, so every
// field is probed in the locations the API is known to use.
func MapHHResume(raw []byte) storage.Record {
	doc := gjson.ParseBytes(raw)

	fullName := strings.TrimSpace(doc.Get("first_name").String() + " " + doc.Get("last_name").String())
	if fullName == "" {
		fullName = doc.Get("name").String()
	}
	if fullName == "" {
		fullName = doc.Get("title").String()
	}
	if fullName == "" {
		fullName = "hh.ru candidate"
	}

	position := doc.Get("title").String()
	if position == "" {
		if pos := doc.Get("position"); pos.Type == gjson.String {
			position = pos.String()
		}
	}
	if position == "" {
		position = "Specialist"
	}

	return storage.Record{
		"name":       fullName,
		"position":   position,
		"experience": hhExperienceYears(doc),
		"skills":     hhSkills(doc),
		"education":  hhEducation(doc),
		"languages":  hhLanguages(doc),
		"contact_info": map[string]string{
			"email": hhEmail(doc),
			"phone": hhPhone(doc),
		},
	}
}

// hh reports total experience in months, sometimes nested one level deeper.
func hhExperienceYears(doc gjson.Result) int {
	total := doc.Get("experience.total")
	var months float64
	switch {
	case total.IsObject():
		months = total.Get("months").Float()
	case total.Type == gjson.Number:
		months = total.Float()
	}
	years := int(math.Round(months / 12))
	if years < 0 {
		return 0
	}
	return years
}

func hhSkills(doc gjson.Result) []string {
	list := doc.Get("key_skills")
	if !list.Exists() {
		list = doc.Get("skills")
	}
	skills := []string{}
	for _, item := range list.Array() {
		switch {
		case item.IsObject():
			if name := item.Get("name").String(); name != "" {
				skills = append(skills, name)
			}
		case item.Type == gjson.String:
			skills = append(skills, item.String())
		}
	}
	return skills
}

func hhEducation(doc gjson.Result) string {
	if level := doc.Get("education.level.name").String(); level != "" {
		return level
	}
	return "Not specified"
}

func hhLanguages(doc gjson.Result) []string {
	list := doc.Get("language")
	if !list.Exists() {
		list = doc.Get("languages")
	}
	languages := []string{}
	for _, item := range list.Array() {
		if !item.IsObject() {
			continue
		}
		name := item.Get("name").String()
		if name == "" {
			name = item.Get("id").String()
		}
		if name == "" {
			continue
		}
		level := item.Get("level.name").String()
		if level == "" && item.Get("level").Type == gjson.String {
			level = item.Get("level").String()
		}
		if level != "" {
			name = name + " (" + level + ")"
		}
		languages = append(languages, name)
	}
	return languages
}

func hhEmail(doc gjson.Result) string {
	if email := doc.Get("contact.email").String(); email != "" {
		return email
	}
	if email := doc.Get("contacts.email").String(); email != "" {
		return email
	}
	return doc.Get("email").String()
}

func hhPhone(doc gjson.Result) string {
	for _, path := range []string{"contact.phone", "contacts.phone"} {
		phone := doc.Get(path)
		switch {
		case phone.IsObject():
			if number := phone.Get("formatted").String(); number != "" {
				return number
			}
			if number := phone.Get("number").String(); number != "" {
				return number
			}
		case phone.Type == gjson.String:
			return phone.String()
		}
	}
	if phones := doc.Get("phones").Array(); len(phones) > 0 {
		p0 := phones[0]
		if p0.IsObject() {
			if number := p0.Get("formatted").String(); number != "" {
				return number
			}
			return p0.Get("number").String()
		}
		return p0.String()
	}
	return ""
}
