package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080"

var keywords = []string{"air", "run", "trail", "nike", "classic"}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

// doRequest чаще запрашивает главную страницу, она отдаётся из кэша.
func doRequest() {
	target := baseURL + "/front"
	if rand.Intn(3) == 0 {
		target = baseURL + "/front/search?keywords=" + url.QueryEscape(keywords[rand.Intn(len(keywords))])
	}

	resp, err := http.Get(target)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
	} else {
		fmt.Println("GET", target, "->", resp.Status)
		resp.Body.Close()
	}
}
