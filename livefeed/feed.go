// livefeed/feed.go
package livefeed

import (
	"context"
	"fmt"
	"time"

	"lostandfound/logger"
	"lostandfound/model"

	"cloud.google.com/go/firestore"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Publisher mirrors stored reports into a Firestore collection that feeds
// the public dashboard, and pushes an FCM alert for critical reports. A nil
// Publisher (no Firebase credentials configured) is a no-op.
type Publisher struct {
	fs         *firestore.Client
	msg        *messaging.Client
	collection string
	alertTopic string
	log        *logger.Logger
}

func New(fs *firestore.Client, msg *messaging.Client, collection, alertTopic string, baseLog *logger.Logger) *Publisher {
	if fs == nil {
		return nil
	}
	return &Publisher{
		fs:         fs,
		msg:        msg,
		collection: collection,
		alertTopic: alertTopic,
		log:        baseLog.With("component", "livefeed"),
	}
}

// Publish writes the feed document for a stored report. Feed failures never
// unwind the insert; callers log and move on.
func (p *Publisher) Publish(ctx context.Context, r *model.Report) error {
	if p == nil {
		return nil
	}

	doc := map[string]interface{}{
		"ReportID":   r.ReportID,
		"ReportType": r.ReportType,
		"Urgency":    r.Urgency,
		"Color":      UrgencyColor(r.Urgency),
		"Location":   r.Location,
		"AllData":    r.AllData,
		"PhotoID":    r.PhotoID,
		"CreatedAt":  r.CreatedAt,
	}

	docRef := p.fs.Collection(p.collection).Doc(fmt.Sprintf("report_%s", r.ReportID))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return fmt.Errorf("publish report %s: %w", r.ReportID, err)
	}

	if r.Urgency == model.UrgencyCritical {
		p.alert(ctx, r)
	}
	return nil
}

// alert pushes an FCM message to the responders topic. Alert delivery is
// best effort.
func (p *Publisher) alert(ctx context.Context, r *model.Report) {
	if p.msg == nil {
		return
	}

	message := &messaging.Message{
		Topic: p.alertTopic,
		Notification: &messaging.Notification{
			Title: fmt.Sprintf("Critical report %s", r.ReportID),
			Body:  r.ReportType + " — " + preview(r.AllData, 100),
		},
		Data: map[string]string{
			"report_id":   r.ReportID,
			"report_type": r.ReportType,
		},
	}

	if _, err := p.msg.Send(ctx, message); err != nil {
		p.log.Warn("failed to send critical report alert", "report_id", r.ReportID, "error", err)
		return
	}
	p.log.Info("critical report alert sent", "report_id", r.ReportID, "topic", p.alertTopic)
}

// Prune deletes feed documents older than the cutoff and returns how many
// were removed.
func (p *Publisher) Prune(ctx context.Context, cutoff time.Time) (int, error) {
	if p == nil {
		return 0, nil
	}

	iter := p.fs.Collection(p.collection).Where("CreatedAt", "<", cutoff).Documents(ctx)
	defer iter.Stop()

	deleted := 0
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return deleted, fmt.Errorf("iterate feed: %w", err)
		}

		if _, err := snap.Ref.Delete(ctx); err != nil {
			// already gone is fine, another pruner may have raced us
			if status.Code(err) == codes.NotFound {
				continue
			}
			return deleted, fmt.Errorf("delete feed doc %s: %w", snap.Ref.ID, err)
		}
		deleted++
	}
	return deleted, nil
}

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
