package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"reportshub/dto"
	"reportshub/internal/models"
	"reportshub/internal/repository"
)

// In-memory repositories backing the service tests. They implement the
// same contracts as the mongo repositories, including ErrNoDocument on
// missing lookups and the single-document upsert keyed on the
// (user, template, period) triple.

type fakeUserRepo struct {
	users []models.User
}

func (r *fakeUserRepo) Insert(_ context.Context, u models.User) error {
	r.users = append(r.users, u)
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNoDocument
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for i := range r.users {
		if r.users[i].Username == username {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNoDocument
}

func (r *fakeUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]models.User, error) {
	return append([]models.User(nil), r.users...), nil
}

func (r *fakeUserRepo) SetApproved(_ context.Context, id string, approved bool) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].Approved = approved
			return nil
		}
	}
	return repository.ErrNoDocument
}

func (r *fakeUserRepo) SetRole(_ context.Context, id string, role string) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].Role = role
			return nil
		}
	}
	return repository.ErrNoDocument
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return repository.ErrNoDocument
}

func (r *fakeUserRepo) ExistsByLocation(_ context.Context, locationID string) (bool, error) {
	for _, u := range r.users {
		if u.LocationID != nil && *u.LocationID == locationID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) CountApproved(_ context.Context, approved bool) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Approved == approved {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, role string) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	var n int64
	for _, u := range r.users {
		if !u.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

type fakeLocationRepo struct {
	locations []models.Location
}

func (r *fakeLocationRepo) Insert(_ context.Context, l models.Location) error {
	r.locations = append(r.locations, l)
	return nil
}

func (r *fakeLocationRepo) FindByID(_ context.Context, id string) (*models.Location, error) {
	for i := range r.locations {
		if r.locations[i].ID == id {
			l := r.locations[i]
			return &l, nil
		}
	}
	return nil, repository.ErrNoDocument
}

func (r *fakeLocationRepo) FindByName(_ context.Context, name string) (*models.Location, error) {
	for i := range r.locations {
		if r.locations[i].Name == name {
			l := r.locations[i]
			return &l, nil
		}
	}
	return nil, repository.ErrNoDocument
}

func (r *fakeLocationRepo) NameTaken(_ context.Context, name, excludeID string) (bool, error) {
	for _, l := range r.locations {
		if l.Name == name && l.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLocationRepo) FindAll(_ context.Context) ([]models.Location, error) {
	return append([]models.Location(nil), r.locations...), nil
}

func (r *fakeLocationRepo) UpdateName(_ context.Context, id, name string) error {
	for i := range r.locations {
		if r.locations[i].ID == id {
			r.locations[i].Name = name
			return nil
		}
	}
	return repository.ErrNoDocument
}

func (r *fakeLocationRepo) Delete(_ context.Context, id string) error {
	for i := range r.locations {
		if r.locations[i].ID == id {
			r.locations = append(r.locations[:i], r.locations[i+1:]...)
			return nil
		}
	}
	return repository.ErrNoDocument
}

func (r *fakeLocationRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.locations)), nil
}

type fakeFieldRepo struct {
	fields []models.DynamicField
}

func (r *fakeFieldRepo) Insert(_ context.Context, f models.DynamicField) error {
	r.fields = append(r.fields, f)
	return nil
}

func (r *fakeFieldRepo) FindByID(_ context.Context, id string) (*models.DynamicField, error) {
	for i := range r.fields {
		if r.fields[i].ID == id {
			f := r.fields[i]
			return &f, nil
		}
	}
	return nil, repository.ErrNoDocument
}

func (r *fakeFieldRepo) FindActiveByIDs(_ context.Context, ids []string) ([]models.DynamicField, error) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []models.DynamicField
	for _, f := range r.fields {
		if want[f.ID] && !f.Deleted {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFieldRepo) FindAll(_ context.Context, includeDeleted bool) ([]models.DynamicField, error) {
	var out []models.DynamicField
	for _, f := range r.fields {
		if includeDeleted || !f.Deleted {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFieldRepo) Update(_ context.Context, id string, upd dto.DynamicFieldUpdate, now time.Time) (*models.DynamicField, error) {
	for i := range r.fields {
		if r.fields[i].ID != id {
			continue
		}
		f := &r.fields[i]
		if upd.Section != nil {
			f.Section = *upd.Section
		}
		if upd.Label != nil {
			f.Label = *upd.Label
		}
		if upd.FieldType != nil {
			f.FieldType = *upd.FieldType
		}
		if upd.Choices != nil {
			f.Choices = upd.Choices
		}
		if upd.Validation != nil {
			f.Validation = upd.Validation
		}
		if upd.Placeholder != nil {
			f.Placeholder = *upd.Placeholder
		}
		if upd.HelpText != nil {
			f.HelpText = *upd.HelpText
		}
		if upd.Deleted != nil {
			f.Deleted = *upd.Deleted
		}
		f.UpdatedAt = now
		out := *f
		return &out, nil
	}
	return nil, repository.ErrNoDocument
}

func (r *fakeFieldRepo) SetDeleted(_ context.Context, id string, deleted bool, now time.Time) error {
	for i := range r.fields {
		if r.fields[i].ID == id {
			r.fields[i].Deleted = deleted
			r.fields[i].UpdatedAt = now
			return nil
		}
	}
	return repository.ErrNoDocument
}

func (r *fakeFieldRepo) Sections(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, f := range r.fields {
		if f.Deleted || seen[f.Section] {
			continue
		}
		seen[f.Section] = true
		out = append(out, f.Section)
	}
	sort.Strings(out)
	return out, nil
}

func (r *fakeFieldRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, f := range r.fields {
		if !f.Deleted {
			n++
		}
	}
	return n, nil
}

func (r *fakeFieldRepo) CountBySection(_ context.Context, section string) (int64, error) {
	var n int64
	for _, f := range r.fields {
		if !f.Deleted && f.Section == section {
			n++
		}
	}
	return n, nil
}

type fakeTemplateRepo struct {
	templates []models.ReportTemplate
}

func (r *fakeTemplateRepo) Insert(_ context.Context, t models.ReportTemplate) error {
	r.templates = append(r.templates, t)
	return nil
}

func (r *fakeTemplateRepo) FindByID(_ context.Context, id string) (*models.ReportTemplate, error) {
	for i := range r.templates {
		if r.templates[i].ID == id {
			t := r.templates[i]
			return &t, nil
		}
	}
	return nil, repository.ErrNoDocument
}

func (r *fakeTemplateRepo) FindActiveByID(_ context.Context, id string) (*models.ReportTemplate, error) {
	for i := range r.templates {
		if r.templates[i].ID == id && r.templates[i].Active {
			t := r.templates[i]
			return &t, nil
		}
	}
	return nil, repository.ErrNoDocument
}

func (r *fakeTemplateRepo) NameTaken(_ context.Context, name, excludeID string) (bool, error) {
	for _, t := range r.templates {
		if t.Name == name && t.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTemplateRepo) FindAll(_ context.Context) ([]models.ReportTemplate, error) {
	return append([]models.ReportTemplate(nil), r.templates...), nil
}

func (r *fakeTemplateRepo) FindActive(_ context.Context) ([]models.ReportTemplate, error) {
	var out []models.ReportTemplate
	for _, t := range r.templates {
		if t.Active {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTemplateRepo) Update(_ context.Context, id string, upd repository.TemplateUpdate) (*models.ReportTemplate, error) {
	for i := range r.templates {
		if r.templates[i].ID != id {
			continue
		}
		t := &r.templates[i]
		if upd.Name != nil {
			t.Name = *upd.Name
		}
		if upd.Description != nil {
			t.Description = *upd.Description
		}
		if upd.Category != nil {
			t.Category = *upd.Category
		}
		if upd.Active != nil {
			t.Active = *upd.Active
		}
		if upd.ReplaceFields {
			t.Fields = upd.Fields
		}
		t.UpdatedAt = upd.UpdatedAt
		out := *t
		return &out, nil
	}
	return nil, repository.ErrNoDocument
}

func (r *fakeTemplateRepo) Delete(_ context.Context, id string) error {
	for i := range r.templates {
		if r.templates[i].ID == id {
			r.templates = append(r.templates[:i], r.templates[i+1:]...)
			return nil
		}
	}
	return repository.ErrNoDocument
}

func (r *fakeTemplateRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, t := range r.templates {
		if t.Active {
			n++
		}
	}
	return n, nil
}

type fakeSubmissionRepo struct {
	subs []models.ReportSubmission
}

func (r *fakeSubmissionRepo) Upsert(_ context.Context, p repository.UpsertParams) (*models.ReportSubmission, error) {
	for i := range r.subs {
		s := &r.subs[i]
		if s.UserID != p.UserID || s.TemplateID != p.TemplateID || s.ReportPeriod != p.ReportPeriod {
			continue
		}
		if p.Status == models.StatusSubmitted && s.Status != models.StatusSubmitted {
			now := p.Now
			s.SubmittedAt = &now
		}
		s.Data = p.Data
		s.Status = p.Status
		s.UpdatedAt = p.Now
		out := *s
		return &out, nil
	}

	sub := models.ReportSubmission{
		ID:           p.NewID,
		TemplateID:   p.TemplateID,
		UserID:       p.UserID,
		LocationID:   p.LocationID,
		ReportPeriod: p.ReportPeriod,
		Data:         p.Data,
		Status:       p.Status,
		Attachments:  []string{},
		CreatedAt:    p.Now,
		UpdatedAt:    p.Now,
	}
	if p.Status == models.StatusSubmitted {
		now := p.Now
		sub.SubmittedAt = &now
	}
	r.subs = append(r.subs, sub)
	out := sub
	return &out, nil
}

func (r *fakeSubmissionRepo) FindByID(_ context.Context, id string) (*models.ReportSubmission, error) {
	for i := range r.subs {
		if r.subs[i].ID == id {
			s := r.subs[i]
			return &s, nil
		}
	}
	return nil, repository.ErrNoDocument
}

func (r *fakeSubmissionRepo) FindByUser(_ context.Context, userID string) ([]models.ReportSubmission, error) {
	var out []models.ReportSubmission
	for _, s := range r.subs {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSubmissionRepo) FindAll(_ context.Context) ([]models.ReportSubmission, error) {
	return append([]models.ReportSubmission(nil), r.subs...), nil
}

func (r *fakeSubmissionRepo) matches(s models.ReportSubmission, f repository.SubmissionFilter) bool {
	if f.Status != "" && s.Status != f.Status {
		return false
	}
	if f.TemplateID != "" && s.TemplateID != f.TemplateID {
		return false
	}
	if f.UserID != "" && s.UserID != f.UserID {
		return false
	}
	if f.LocationID != "" && (s.LocationID == nil || *s.LocationID != f.LocationID) {
		return false
	}
	if f.DateFrom != nil && s.CreatedAt.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && s.CreatedAt.After(*f.DateTo) {
		return false
	}
	if f.SearchTerm != "" {
		hay := strings.ToLower(fmt.Sprintf("%v %s", s.Data, s.ReportPeriod))
		if !strings.Contains(hay, strings.ToLower(f.SearchTerm)) {
			return false
		}
	}
	return true
}

func (r *fakeSubmissionRepo) Search(_ context.Context, f repository.SubmissionFilter, skip, limit int64) ([]models.ReportSubmission, int64, error) {
	var matched []models.ReportSubmission
	for _, s := range r.subs {
		if r.matches(s, f) {
			matched = append(matched, s)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := int64(len(matched))
	if skip >= total {
		return nil, total, nil
	}
	matched = matched[skip:]
	if int64(len(matched)) > limit {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (r *fakeSubmissionRepo) CountByIDs(_ context.Context, ids []string) (int64, error) {
	known := make(map[string]bool, len(r.subs))
	for _, s := range r.subs {
		known[s.ID] = true
	}
	var n int64
	for _, id := range ids {
		if known[id] {
			n++
		}
	}
	return n, nil
}

func (r *fakeSubmissionRepo) DeleteByIDs(_ context.Context, ids []string) (int64, error) {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	var kept []models.ReportSubmission
	var n int64
	for _, s := range r.subs {
		if drop[s.ID] {
			n++
			continue
		}
		kept = append(kept, s)
	}
	r.subs = kept
	return n, nil
}

func (r *fakeSubmissionRepo) UpdateStatusByIDs(_ context.Context, ids []string, status, reviewedBy string, reviewedAt time.Time) (int64, error) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var n int64
	for i := range r.subs {
		if !want[r.subs[i].ID] {
			continue
		}
		r.subs[i].Status = status
		by := reviewedBy
		at := reviewedAt
		r.subs[i].ReviewedBy = &by
		r.subs[i].ReviewedAt = &at
		r.subs[i].UpdatedAt = reviewedAt
		n++
	}
	return n, nil
}

func (r *fakeSubmissionRepo) ExistsForTemplate(_ context.Context, templateID string) (bool, error) {
	for _, s := range r.subs {
		if s.TemplateID == templateID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSubmissionRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.subs)), nil
}

func (r *fakeSubmissionRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, s := range r.subs {
		if s.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeSubmissionRepo) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	var n int64
	for _, s := range r.subs {
		if !s.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}
