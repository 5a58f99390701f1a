package events

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/isochrone"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/domain/routing"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/kafka"
)

const (
	// TopicIsochroneRequests carries requests waiting for the isochrone engine.
	TopicIsochroneRequests = "isochrone.requests"

	// EventIsochroneRequested is published once per accepted request.
	EventIsochroneRequested = "isochrone.requested"

	eventSource = "service-isochrone"
)

// TravellerPayload describes one traveller inside an IsochroneRequestedEvent.
type TravellerPayload struct {
	ID                    string                         `json:"id"`
	Location              [2]float64                     `json:"location"`
	LocationType          string                         `json:"location_type"`
	RangeType             string                         `json:"range_type"`
	Ranges                []float64                      `json:"ranges"`
	RouteSearchParameters *routing.RouteSearchParameters `json:"route_search_parameters,omitempty"`
}

// IsochroneRequestedEvent is the data of an isochrone.requested CloudEvent.
type IsochroneRequestedEvent struct {
	RequestID     string             `json:"request_id,omitempty"`
	Profile       string             `json:"profile"`
	CalcMethod    string             `json:"calc_method"`
	Intersections bool               `json:"intersections"`
	Attributes    []string           `json:"attributes,omitempty"`
	Smoothing     *float32           `json:"smoothing,omitempty"`
	Units         string             `json:"units"`
	AreaUnits     string             `json:"area_units"`
	Travellers    []TravellerPayload `json:"travellers"`
	OccurredAt    time.Time          `json:"occurred_at"`
}

type eventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, ce kafka.CloudEvent) error
}

// IsochroneDispatcher hands converted isochrone requests to the engine over Kafka.
type IsochroneDispatcher struct {
	publisher eventPublisher
	logger    *zap.Logger
}

// NewIsochroneDispatcher creates a new IsochroneDispatcher.
func NewIsochroneDispatcher(producer *kafka.Producer, logger *zap.Logger) *IsochroneDispatcher {
	return &IsochroneDispatcher{publisher: producer, logger: logger}
}

// Dispatch publishes the request as a single isochrone.requested event.
func (d *IsochroneDispatcher) Dispatch(ctx context.Context, req *isochrone.Request) error {
	evt := newIsochroneRequestedEvent(req)

	ce, err := kafka.NewCloudEvent(eventSource, EventIsochroneRequested, evt)
	if err != nil {
		return fmt.Errorf("failed to create cloud event: %w", err)
	}
	if err := d.publisher.PublishEvent(ctx, TopicIsochroneRequests, evt.RequestID, ce); err != nil {
		d.logger.Error("failed to publish event",
			zap.String("topic", TopicIsochroneRequests),
			zap.String("event_type", EventIsochroneRequested),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func newIsochroneRequestedEvent(req *isochrone.Request) IsochroneRequestedEvent {
	evt := IsochroneRequestedEvent{
		RequestID:     req.ID(),
		Profile:       req.Profile().String(),
		CalcMethod:    req.CalcMethod(),
		Intersections: req.IncludeIntersections(),
		Attributes:    req.Attributes(),
		Units:         req.Units().String(),
		AreaUnits:     req.AreaUnits().String(),
		OccurredAt:    time.Now().UTC(),
	}
	if s, ok := req.SmoothingFactor(); ok {
		evt.Smoothing = &s
	}

	travellers := req.Travellers()
	evt.Travellers = make([]TravellerPayload, len(travellers))
	for i, t := range travellers {
		loc := t.Location()
		evt.Travellers[i] = TravellerPayload{
			ID:                    t.ID(),
			Location:              [2]float64{loc.X, loc.Y},
			LocationType:          t.LocationType(),
			RangeType:             t.RangeType().String(),
			Ranges:                t.Ranges().Values(),
			RouteSearchParameters: t.RouteSearchParameters(),
		}
	}
	return evt
}
