// Package tests encodes the scenario walkthroughs as Gherkin features,
// following the teacher pack's godog.TestSuite/ScenarioContext BDD
// pattern (see GoCodeAlone-modular's per-module *_bdd_test.go files).
package tests

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cucumber/godog"

	"github.com/mreqlib/mreq/internal/bus/declare"
	"github.com/mreqlib/mreq/internal/bus/registry"
	"github.com/mreqlib/mreq/internal/bus/subscriber"
	"github.com/mreqlib/mreq/internal/bus/topic"
	buserrors "github.com/mreqlib/mreq/pkg/errors"
)

// reading is the scenario message payload type shared by every
// feature in this package.
type reading struct {
	ID   int32
	Temp float32
	TS   uint64
}

type busBDDContext struct {
	topics map[string]*topic.Topic[reading]
	descs  map[string]*registry.Descriptor

	tokens      map[string]subscriber.Token
	lastTokens  []subscriber.Token
	lastErr     error
	lastMsg     reading
	lastOK      bool
	drained     []reading
	subscribeOK []bool

	reg       *registry.Registry
	regDescs  map[string]*registry.Descriptor
	regErrs   map[string]error
	ghostDesc *registry.Descriptor
}

func (c *busBDDContext) reset() {
	c.topics = make(map[string]*topic.Topic[reading])
	c.descs = make(map[string]*registry.Descriptor)
	c.tokens = make(map[string]subscriber.Token)
	c.lastTokens = nil
	c.lastErr = nil
	c.drained = nil
	c.subscribeOK = nil
	c.regDescs = make(map[string]*registry.Descriptor)
	c.regErrs = make(map[string]error)
}

func (c *busBDDContext) topicWithRingDepth(name string, depth int) error {
	t, d := declare.Declare[reading](name, uint(depth), 8, nil, nil)
	c.topics[name] = t
	c.descs[name] = d
	return nil
}

func (c *busBDDContext) topicWithRingDepthAndMaxSubscribers(name string, depth, maxSubs int) error {
	t, d := declare.Declare[reading](name, uint(depth), uint(maxSubs), nil, nil)
	c.topics[name] = t
	c.descs[name] = d
	return nil
}

func (c *busBDDContext) aSubscriberOn(name string) error {
	token, err := c.topics[name].Subscribe()
	if err != nil {
		return err
	}
	c.tokens[name+"#1"] = token
	return nil
}

func (c *busBDDContext) twoSubscribersOn(name string) error {
	t1, err := c.topics[name].Subscribe()
	if err != nil {
		return err
	}
	t2, err := c.topics[name].Subscribe()
	if err != nil {
		return err
	}
	c.tokens[name+"#1"] = t1
	c.tokens[name+"#2"] = t2
	return nil
}

func (c *busBDDContext) iPublishMessageWithIDTempTSTo(_ int, id int, temp float64, ts int, topicName string) error {
	c.topics[topicName].Publish(reading{ID: int32(id), Temp: float32(temp), TS: uint64(ts)})
	return nil
}

func (c *busBDDContext) checkingTheSubscriberOnReportsTrue(name string) error {
	ok := c.topics[name].Check(c.tokens[name+"#1"])
	if !ok {
		return fmt.Errorf("expected Check to report true")
	}
	return nil
}

func (c *busBDDContext) readingTheSubscriberOnReturnsIDTempTS(name string, id int, temp float64, ts int) error {
	msg, ok := c.topics[name].Read(c.tokens[name+"#1"])
	if !ok {
		return fmt.Errorf("expected a message, got none")
	}
	want := reading{ID: int32(id), Temp: float32(temp), TS: uint64(ts)}
	if msg != want {
		return fmt.Errorf("got %+v, want %+v", msg, want)
	}
	return nil
}

func (c *busBDDContext) readingTheSubscriberOnAgainReturnsNothing(name string) error {
	_, ok := c.topics[name].Read(c.tokens[name+"#1"])
	if ok {
		return fmt.Errorf("expected no message")
	}
	return nil
}

func (c *busBDDContext) readingTheNthSubscriberOnReturnsIDTempTS(ordinal, name string, id int, temp float64, ts int) error {
	token := c.tokens[name+"#"+ordinalDigit(ordinal)]
	msg, ok := c.topics[name].Read(token)
	if !ok {
		return fmt.Errorf("expected a message, got none")
	}
	want := reading{ID: int32(id), Temp: float32(temp), TS: uint64(ts)}
	if msg != want {
		return fmt.Errorf("got %+v, want %+v", msg, want)
	}
	return nil
}

func (c *busBDDContext) readingTheNthSubscriberOnAgainReturnsNothing(ordinal, name string) error {
	token := c.tokens[name+"#"+ordinalDigit(ordinal)]
	_, ok := c.topics[name].Read(token)
	if ok {
		return fmt.Errorf("expected no message")
	}
	return nil
}

func ordinalDigit(ordinal string) string {
	switch ordinal {
	case "first":
		return "1"
	case "second":
		return "2"
	default:
		return ordinal
	}
}

func (c *busBDDContext) iPublishSequentialMessagesStartingAtValueTo(count, start int, name string) error {
	for i := 0; i < count; i++ {
		c.topics[name].Publish(reading{ID: int32(start + i)})
	}
	return nil
}

func (c *busBDDContext) iDrainAllRemainingReadsFromTheSubscriberOn(name string) error {
	c.drained = nil
	for {
		msg, ok := c.topics[name].Read(c.tokens[name+"#1"])
		if !ok {
			break
		}
		c.drained = append(c.drained, msg)
	}
	return nil
}

func (c *busBDDContext) exactlyMessagesWereReadFrom(count int, _ string) error {
	if len(c.drained) != count {
		return fmt.Errorf("got %d reads, want %d", len(c.drained), count)
	}
	return nil
}

func (c *busBDDContext) theFirstDrainedMessageFromHasID(_ string, id int) error {
	if c.drained[0].ID != int32(id) {
		return fmt.Errorf("got id %d, want %d", c.drained[0].ID, id)
	}
	return nil
}

func (c *busBDDContext) theLastDrainedMessageFromHasID(_ string, id int) error {
	last := c.drained[len(c.drained)-1]
	if last.ID != int32(id) {
		return fmt.Errorf("got id %d, want %d", last.ID, id)
	}
	return nil
}

func (c *busBDDContext) iSubscribeTimesTo(count int, name string) error {
	for i := 0; i < count; i++ {
		token, err := c.topics[name].Subscribe()
		c.subscribeOK = append(c.subscribeOK, err == nil)
		if err == nil {
			c.lastTokens = append(c.lastTokens, token)
		}
	}
	return nil
}

func (c *busBDDContext) theNthSubscriptionToFailsWithNoSlot(ordinal int, name string) error {
	_, err := c.topics[name].Subscribe()
	if !errors.Is(err, buserrors.ErrNoSlot) {
		return fmt.Errorf("expected subscribe #%d to fail with no slot, got %v", ordinal, err)
	}
	return nil
}

func (c *busBDDContext) iUnsubscribeTheNthSubscriberFrom(ordinal int, name string) error {
	c.topics[name].Unsubscribe(c.lastTokens[ordinal-1])
	return nil
}

func (c *busBDDContext) theNthSubscriptionToSucceeds(ordinal int, name string) error {
	_, err := c.topics[name].Subscribe()
	if err != nil {
		return fmt.Errorf("expected subscribe #%d to succeed, got %v", ordinal, err)
	}
	return nil
}

func (c *busBDDContext) aRegistryWithCapacity(capacity int) error {
	c.reg = registry.New(capacity, nil)
	return nil
}

func (c *busBDDContext) aDescriptorRegisteredInTheRegistry(label string) error {
	_, d := declare.Declare[reading](label, 1, 1, nil, nil)
	c.regDescs[label] = d
	return c.reg.Register(d)
}

func (c *busBDDContext) iRegisterASecondDescriptorSharingTheSameTopicNameAs(label, existing string) error {
	existingDesc := c.regDescs[existing]
	d := &registry.Descriptor{TopicName: existingDesc.TopicName, MessageID: existingDesc.MessageID}
	c.regDescs[label] = d
	c.regErrs[label] = c.reg.Register(d)
	return nil
}

func (c *busBDDContext) theSecondRegistrationFailsWithDuplicateTopic() error {
	for _, err := range c.regErrs {
		if !errors.Is(err, buserrors.ErrDuplicateTopic) {
			return fmt.Errorf("expected duplicate-topic error, got %v", err)
		}
	}
	return nil
}

func (c *busBDDContext) findingTheTopicNameByEitherDescriptorReturnsTheFirstRegisteredEntry() error {
	var first *registry.Descriptor
	for _, d := range c.regDescs {
		found, ok := c.reg.Find(d.MessageID)
		if !ok {
			return fmt.Errorf("expected to find message_id %d", d.MessageID)
		}
		if first == nil {
			first = found
		} else if found != first {
			return fmt.Errorf("expected both lookups to return the same first-registered entry")
		}
	}
	return nil
}

func (c *busBDDContext) anUnregisteredDescriptor(label string) error {
	_, d := declare.Declare[reading](label, 1, 1, nil, nil)
	c.ghostDesc = d
	return nil
}

func (c *busBDDContext) iPublishToTheUnregisteredDescriptor(_ string) error {
	_, ok := c.reg.Find(c.ghostDesc.MessageID)
	if ok {
		return fmt.Errorf("descriptor should not be found")
	}
	c.lastOK = ok
	return nil
}

func (c *busBDDContext) thePublishFailsWithUnknownTopic() error {
	if c.lastOK {
		return fmt.Errorf("expected unknown topic")
	}
	return nil
}

func (c *busBDDContext) iSubscribeToTheUnregisteredDescriptor(_ string) error {
	_, ok := c.reg.Find(c.ghostDesc.MessageID)
	c.lastOK = ok
	return nil
}

func (c *busBDDContext) theSubscribeFailsWithUnknownTopic() error {
	if c.lastOK {
		return fmt.Errorf("expected unknown topic")
	}
	return nil
}

func (c *busBDDContext) theRegistryStillHasRegisteredTopics(count int) error {
	if c.reg.Size() != count {
		return fmt.Errorf("got %d registered topics, want %d", c.reg.Size(), count)
	}
	return nil
}

func initializeScenario(sc *godog.ScenarioContext) {
	c := &busBDDContext{}
	c.reset()

	sc.Step(`^a topic "([^"]*)" with ring depth (\d+)$`, c.topicWithRingDepth)
	sc.Step(`^a topic "([^"]*)" with ring depth (\d+) and max subscribers (\d+)$`, c.topicWithRingDepthAndMaxSubscribers)
	sc.Step(`^a subscriber on "([^"]*)"$`, c.aSubscriberOn)
	sc.Step(`^two subscribers on "([^"]*)"$`, c.twoSubscribersOn)
	sc.Step(`^I publish message (\d+) with id (\d+) temp ([0-9.]+) ts (\d+) to "([^"]*)"$`, c.iPublishMessageWithIDTempTSTo)
	sc.Step(`^checking the subscriber on "([^"]*)" reports true$`, c.checkingTheSubscriberOnReportsTrue)
	sc.Step(`^reading the subscriber on "([^"]*)" returns id (\d+) temp ([0-9.]+) ts (\d+)$`, c.readingTheSubscriberOnReturnsIDTempTS)
	sc.Step(`^reading the subscriber on "([^"]*)" again returns nothing$`, c.readingTheSubscriberOnAgainReturnsNothing)
	sc.Step(`^reading the (first|second) subscriber on "([^"]*)" returns id (\d+) temp ([0-9.]+) ts (\d+)$`, c.readingTheNthSubscriberOnReturnsIDTempTS)
	sc.Step(`^reading the (first|second) subscriber on "([^"]*)" again returns nothing$`, c.readingTheNthSubscriberOnAgainReturnsNothing)
	sc.Step(`^I publish (\d+) sequential messages starting at value (\d+) to "([^"]*)"$`, c.iPublishSequentialMessagesStartingAtValueTo)
	sc.Step(`^I drain all remaining reads from the subscriber on "([^"]*)"$`, c.iDrainAllRemainingReadsFromTheSubscriberOn)
	sc.Step(`^exactly (\d+) messages were read from "([^"]*)"$`, c.exactlyMessagesWereReadFrom)
	sc.Step(`^the first drained message from "([^"]*)" has id (\d+)$`, c.theFirstDrainedMessageFromHasID)
	sc.Step(`^the last drained message from "([^"]*)" has id (\d+)$`, c.theLastDrainedMessageFromHasID)
	sc.Step(`^I subscribe (\d+) times to "([^"]*)"$`, c.iSubscribeTimesTo)
	sc.Step(`^the (\d+)th subscription to "([^"]*)" fails with no slot$`, c.theNthSubscriptionToFailsWithNoSlot)
	sc.Step(`^I unsubscribe the (\d+)st subscriber from "([^"]*)"$`, c.iUnsubscribeTheNthSubscriberFrom)
	sc.Step(`^the (\d+)th subscription to "([^"]*)" succeeds$`, c.theNthSubscriptionToSucceeds)
	sc.Step(`^a registry with capacity (\d+)$`, c.aRegistryWithCapacity)
	sc.Step(`^a descriptor "([^"]*)" registered in the registry$`, c.aDescriptorRegisteredInTheRegistry)
	sc.Step(`^I register a second descriptor "([^"]*)" sharing the same topic name as "([^"]*)"$`, c.iRegisterASecondDescriptorSharingTheSameTopicNameAs)
	sc.Step(`^the second registration fails with duplicate topic$`, c.theSecondRegistrationFailsWithDuplicateTopic)
	sc.Step(`^finding the topic name by either descriptor returns the first-registered entry$`, c.findingTheTopicNameByEitherDescriptorReturnsTheFirstRegisteredEntry)
	sc.Step(`^an unregistered descriptor "([^"]*)"$`, c.anUnregisteredDescriptor)
	sc.Step(`^I publish to the unregistered descriptor "([^"]*)"$`, c.iPublishToTheUnregisteredDescriptor)
	sc.Step(`^the publish fails with unknown topic$`, c.thePublishFailsWithUnknownTopic)
	sc.Step(`^I subscribe to the unregistered descriptor "([^"]*)"$`, c.iSubscribeToTheUnregisteredDescriptor)
	sc.Step(`^the subscribe fails with unknown topic$`, c.theSubscribeFailsWithUnknownTopic)
	sc.Step(`^the registry still has (\d+) registered topics$`, c.theRegistryStillHasRegisteredTopics)

	sc.BeforeScenario(func(*godog.Scenario) {
		c.reset()
	})
}

func TestBusBDD(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
