package social_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/longhorn/social"
	"github.com/katalvlaran/longhorn/student"
)

// ExampleHub_Run sends a friend request and a chat on two workers.
func ExampleHub_Run() {
	alice := student.New("Alice", 20, "Female", 2, "Computer Science", 3.5, nil, nil)
	bob := student.New("Bob", 21, "Male", 3, "Computer Science", 3.7, nil, nil)

	h := social.NewHub()
	err := h.Run(context.Background(), []social.Task{
		social.FriendRequest(alice, bob),
		social.Chat(alice, bob, "Hello!"),
	}, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(h.Friends(bob))
	for _, m := range h.Messages(bob) {
		fmt.Println(m)
	}
	// Output:
	// [Alice]
	// Alice -> Bob: Hello!
}
