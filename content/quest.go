package content

// Quest is a multi-step objective chain. Step references are optional; a step
// may simply be narrative text.
type Quest struct {
	ID      QuestID     `ron:"id" json:"id"`
	Name    string      `ron:"name" json:"name"`
	Steps   []QuestStep `ron:"steps" json:"steps"`
	Rewards []ItemID    `ron:"rewards,default" json:"rewards,omitempty"`
}

// QuestStep is one objective within a quest.
type QuestStep struct {
	Description string      `ron:"description" json:"description"`
	Dialogue    *DialogueID `ron:"dialogue" json:"dialogue,omitempty"`
	Map         *MapID      `ron:"map" json:"map,omitempty"`
	Item        *ItemID     `ron:"item" json:"item,omitempty"`
}

// DialogueTree is a branching conversation. Every choice target must name an
// existing node or the terminal sentinel.
type DialogueTree struct {
	ID    DialogueID              `ron:"id" json:"id"`
	Root  NodeID                  `ron:"root" json:"root"`
	Nodes map[NodeID]DialogueNode `ron:"nodes" json:"nodes"`
}

// DialogueNode is one screen of conversation text with its outgoing choices.
// A node with no choices ends the conversation.
type DialogueNode struct {
	Text    string           `ron:"text" json:"text"`
	Choices []DialogueChoice `ron:"choices,default" json:"choices,omitempty"`
}

// DialogueChoice is a player-selectable reply.
type DialogueChoice struct {
	Text   string `ron:"text" json:"text"`
	Target NodeID `ron:"target" json:"target"`
}

// Npc is a named non-player character referenced by map placements.
type Npc struct {
	ID        NpcID       `ron:"id" json:"id"`
	Name      string      `ron:"name" json:"name"`
	Dialogue  *DialogueID `ron:"dialogue" json:"dialogue,omitempty"`
	Innkeeper bool        `ron:"innkeeper,default" json:"innkeeper,omitempty"`
}
