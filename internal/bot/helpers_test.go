package bot

import (
	"context"
	"errors"
	"time"

	"github.com/menubohq/menubo/internal/line"
	"github.com/menubohq/menubo/internal/presets"
	"github.com/menubohq/menubo/internal/storage"
)

type textReply struct {
	token string
	text  string
}

type imageReply struct {
	token string
	url   string
}

type buttonsReply struct {
	token   string
	altText string
	text    string
	actions []line.PostbackAction
}

type fakeMessenger struct {
	texts    []textReply
	images   []imageReply
	buttons  []buttonsReply
	fetches  []string
	content  []byte
	fetchErr error
}

func (m *fakeMessenger) ReplyText(_ context.Context, token, text string) error {
	m.texts = append(m.texts, textReply{token: token, text: text})
	return nil
}

func (m *fakeMessenger) ReplyImage(_ context.Context, token, url string) error {
	m.images = append(m.images, imageReply{token: token, url: url})
	return nil
}

func (m *fakeMessenger) ReplyButtons(_ context.Context, token, altText, text string, actions []line.PostbackAction) error {
	m.buttons = append(m.buttons, buttonsReply{token: token, altText: altText, text: text, actions: actions})
	return nil
}

func (m *fakeMessenger) GetMessageContent(_ context.Context, messageID string) ([]byte, error) {
	m.fetches = append(m.fetches, messageID)
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.content, nil
}

type uploadCall struct {
	path        string
	data        []byte
	contentType string
}

type copyCall struct {
	src string
	dst string
}

type fakeStore struct {
	uploads   []uploadCall
	copies    []copyCall
	deletes   []string
	objects   []storage.ObjectInfo
	uploadErr error
	copyErr   error
	listErr   error
	deleteErr error
}

func (s *fakeStore) Upload(_ context.Context, path string, data []byte, contentType string) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	s.uploads = append(s.uploads, uploadCall{path: path, data: data, contentType: contentType})
	return nil
}

func (s *fakeStore) Copy(_ context.Context, src, dst string) error {
	if s.copyErr != nil {
		return s.copyErr
	}
	s.copies = append(s.copies, copyCall{src: src, dst: dst})
	return nil
}

func (s *fakeStore) Delete(_ context.Context, path string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletes = append(s.deletes, path)
	return nil
}

func (s *fakeStore) List(_ context.Context, prefix string) ([]storage.ObjectInfo, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.objects, nil
}

type staticAdmins []string

func (a staticAdmins) IsAdmin(userID string) bool {
	for _, id := range a {
		if id == userID && id != "" {
			return true
		}
	}
	return false
}

var errUpstream = errors.New("upstream unavailable")

type storageObject = storage.ObjectInfo

func newTestBot(messenger *fakeMessenger, store *fakeStore, admins staticAdmins) *Bot {
	b := New(nil, messenger, store, presets.Default(), admins, Options{Bucket: "test-bucket"})
	b.newPendingID = func() string { return "fixed-id" }
	return b
}

func staged(at time.Time, path string) storage.ObjectInfo {
	return storage.ObjectInfo{Path: path, Created: at}
}
