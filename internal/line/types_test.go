package line

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookDecode(t *testing.T) {
	t.Parallel()

	raw := `{"events":[
		{"type":"message","replyToken":"r1","source":{"type":"user","userId":"U1"},"timestamp":1700000000000,"message":{"id":"m1","type":"text","text":"menu1"}},
		{"type":"message","replyToken":"r2","source":{"type":"group","groupId":"G1","userId":"U2"},"message":{"id":"m2","type":"image"}},
		{"type":"postback","replyToken":"r3","postback":{"data":"pending=abc&target=menu2"}},
		{"type":"follow","replyToken":"r4"},
		{"type":"message","replyToken":"r5","message":{"id":"m3","type":"sticker"}}
	]}`

	var hook Webhook
	require.NoError(t, json.Unmarshal([]byte(raw), &hook))
	require.Len(t, hook.Events, 5)

	text := hook.Events[0]
	assert.Equal(t, EventMessage, text.Kind)
	assert.Equal(t, "r1", text.ReplyToken)
	assert.Equal(t, "U1", text.Source.UserID)
	require.NotNil(t, text.Message)
	assert.Equal(t, MessageText, text.Message.Kind)
	assert.Equal(t, "menu1", text.Message.Text)

	image := hook.Events[1]
	assert.Equal(t, EventMessage, image.Kind)
	require.NotNil(t, image.Message)
	assert.Equal(t, MessageImage, image.Message.Kind)
	assert.Equal(t, "G1", image.Source.GroupID)

	postback := hook.Events[2]
	assert.Equal(t, EventPostback, postback.Kind)
	require.NotNil(t, postback.Postback)
	assert.Equal(t, "pending=abc&target=menu2", postback.Postback.Data)

	assert.Equal(t, EventUnknown, hook.Events[3].Kind)
	assert.Equal(t, MessageUnknown, hook.Events[4].Message.Kind)
}
